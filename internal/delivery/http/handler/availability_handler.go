package handler

import (
	"net/http"

	"dental-clinic-service/internal/delivery/http/middleware"
	"dental-clinic-service/internal/usecase"
	"dental-clinic-service/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityUsecase: availabilityUsecase}
}

// GetDoctorAvailability serves the slot grid of a doctor's day. The optional
// exclude query parameter carries the id of an appointment under edit so its
// own slot shows as free.
func (h *AvailabilityHandler) GetDoctorAvailability(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de dentista inválido", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Parâmetro date é obrigatório", nil)
		return
	}
	exclude := r.URL.Query().Get("exclude")

	availability, err := h.availabilityUsecase.GetDoctorAvailability(r.Context(), clinicID, doctorID, date, exclude)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Dentista não encontrado")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Data inválida, use o formato YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Falha ao calcular disponibilidade")
		}
		return
	}

	response.Success(w, http.StatusOK, "Disponibilidade calculada com sucesso", availability)
}

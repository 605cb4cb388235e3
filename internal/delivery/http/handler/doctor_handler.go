package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/delivery/http/middleware"
	"dental-clinic-service/internal/usecase"
	"dental-clinic-service/pkg/response"
	"dental-clinic-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), clinicID, userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "E-mail já cadastrado")
		case usecase.ErrCROAlreadyExists:
			response.Conflict(w, "Número de CRO já cadastrado")
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Janela de atendimento inválida", nil)
		default:
			response.InternalServerError(w, "Falha ao cadastrar dentista")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Dentista cadastrado com sucesso", doctor)
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
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

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), clinicID, doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Dentista não encontrado")
		default:
			response.InternalServerError(w, "Falha ao buscar dentista")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentista recuperado com sucesso", doctor)
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar dentistas")
		return
	}

	response.Success(w, http.StatusOK, "Dentistas recuperados com sucesso", doctors)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), clinicID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Dentista não encontrado")
		case usecase.ErrInvalidTimeWindow:
			response.Error(w, http.StatusBadRequest, "Janela de atendimento inválida", nil)
		default:
			response.InternalServerError(w, "Falha ao atualizar dentista")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentista atualizado com sucesso", doctor)
}

func (h *DoctorHandler) DeactivateDoctor(w http.ResponseWriter, r *http.Request) {
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

	if err := h.doctorUsecase.DeactivateDoctor(r.Context(), clinicID, doctorID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Dentista não encontrado")
		default:
			response.InternalServerError(w, "Falha ao desativar dentista")
		}
		return
	}

	response.Success(w, http.StatusOK, "Dentista desativado com sucesso", nil)
}

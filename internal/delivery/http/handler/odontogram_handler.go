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

type OdontogramHandler struct {
	odontogramUsecase usecase.OdontogramUsecase
	validator         *validator.CustomValidator
}

func NewOdontogramHandler(odontogramUsecase usecase.OdontogramUsecase, validator *validator.CustomValidator) *OdontogramHandler {
	return &OdontogramHandler{
		odontogramUsecase: odontogramUsecase,
		validator:         validator,
	}
}

func (h *OdontogramHandler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de paciente inválido", nil)
		return
	}

	var req dto.CreateOdontogramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	snapshot, err := h.odontogramUsecase.CreateSnapshot(r.Context(), clinicID, userID, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Dentista não encontrado")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Data inválida, use o formato YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Falha ao salvar odontograma")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Odontograma salvo com sucesso", snapshot)
}

func (h *OdontogramHandler) GetOdontogramHistory(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de paciente inválido", nil)
		return
	}

	history, err := h.odontogramUsecase.ListByPatient(r.Context(), clinicID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		default:
			response.InternalServerError(w, "Falha ao listar odontogramas")
		}
		return
	}

	response.Success(w, http.StatusOK, "Odontogramas recuperados com sucesso", history)
}

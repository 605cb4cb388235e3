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

type AnamnesisHandler struct {
	anamnesisUsecase usecase.AnamnesisUsecase
	validator        *validator.CustomValidator
}

func NewAnamnesisHandler(anamnesisUsecase usecase.AnamnesisUsecase, validator *validator.CustomValidator) *AnamnesisHandler {
	return &AnamnesisHandler{
		anamnesisUsecase: anamnesisUsecase,
		validator:        validator,
	}
}

func (h *AnamnesisHandler) UpsertAnamnesis(w http.ResponseWriter, r *http.Request) {
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

	var req dto.UpsertAnamnesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.anamnesisUsecase.Upsert(r.Context(), clinicID, userID, patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrAnamnesisNotFound:
			response.NotFound(w, "Anamnese não encontrada")
		case usecase.ErrVersionConflict:
			response.Conflict(w, "Conflito de versão da anamnese, tente novamente")
		default:
			response.InternalServerError(w, "Falha ao salvar anamnese")
		}
		return
	}

	response.Success(w, http.StatusOK, "Anamnese salva com sucesso", record)
}

func (h *AnamnesisHandler) GetAnamnesisHistory(w http.ResponseWriter, r *http.Request) {
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

	history, err := h.anamnesisUsecase.ListByPatient(r.Context(), clinicID, patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		default:
			response.InternalServerError(w, "Falha ao listar anamneses")
		}
		return
	}

	response.Success(w, http.StatusOK, "Anamneses recuperadas com sucesso", history)
}

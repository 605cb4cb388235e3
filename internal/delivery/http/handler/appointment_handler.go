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

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), clinicID, userID, &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Falha ao criar consulta")
		return
	}

	response.Success(w, http.StatusCreated, "Consulta agendada com sucesso", appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de consulta inválido", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateAppointment(r.Context(), clinicID, userID, appointmentID, &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Falha ao atualizar consulta")
		return
	}

	response.Success(w, http.StatusOK, "Consulta atualizada com sucesso", appointment)
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de consulta inválido", nil)
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.appointmentUsecase.UpdateStatus(r.Context(), clinicID, userID, appointmentID, req.Status); err != nil {
		h.writeAppointmentError(w, err, "Falha ao atualizar status da consulta")
		return
	}

	response.Success(w, http.StatusOK, "Status da consulta atualizado com sucesso", nil)
}

func (h *AppointmentHandler) GetAppointmentsByDay(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Parâmetro date é obrigatório", nil)
		return
	}

	doctorID := uuid.Nil
	if raw := r.URL.Query().Get("doctor_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Parâmetro doctor_id inválido", nil)
			return
		}
		doctorID = parsed
	}

	appointments, err := h.appointmentUsecase.GetAppointmentsByDay(r.Context(), clinicID, date, doctorID)
	if err != nil {
		h.writeAppointmentError(w, err, "Falha ao listar consultas")
		return
	}

	response.Success(w, http.StatusOK, "Consultas recuperadas com sucesso", appointments)
}

func (h *AppointmentHandler) writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Consulta não encontrada")
	case usecase.ErrPatientNotFound:
		response.NotFound(w, "Paciente não encontrado")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Dentista não encontrado")
	case usecase.ErrTimeNotAvailable:
		response.Conflict(w, "Horário não disponível")
	case usecase.ErrAppointmentCancelled:
		response.Conflict(w, "Consulta já cancelada")
	case usecase.ErrInvalidDate:
		response.Error(w, http.StatusBadRequest, "Data inválida, use o formato YYYY-MM-DD", nil)
	case usecase.ErrInvalidTime:
		response.Error(w, http.StatusBadRequest, "Horário inválido, use o formato HH:MM:SS", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

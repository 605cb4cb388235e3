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

type TicketHandler struct {
	ticketUsecase usecase.TicketUsecase
	validator     *validator.CustomValidator
}

func NewTicketHandler(ticketUsecase usecase.TicketUsecase, validator *validator.CustomValidator) *TicketHandler {
	return &TicketHandler{
		ticketUsecase: ticketUsecase,
		validator:     validator,
	}
}

func (h *TicketHandler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreateTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ticket, err := h.ticketUsecase.CreateTicket(r.Context(), clinicID, userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Usuário não encontrado")
		default:
			response.InternalServerError(w, "Falha ao abrir chamado")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Chamado aberto com sucesso", ticket)
}

func (h *TicketHandler) GetAllTickets(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	tickets, err := h.ticketUsecase.ListTickets(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar chamados")
		return
	}

	response.Success(w, http.StatusOK, "Chamados recuperados com sucesso", tickets)
}

func (h *TicketHandler) CloseTicket(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	ticketID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de chamado inválido", nil)
		return
	}

	ticket, err := h.ticketUsecase.CloseTicket(r.Context(), clinicID, ticketID)
	if err != nil {
		switch err {
		case usecase.ErrTicketNotFound:
			response.NotFound(w, "Chamado não encontrado")
		case usecase.ErrTicketAlreadyClosed:
			response.Conflict(w, "Chamado já encerrado")
		default:
			response.InternalServerError(w, "Falha ao encerrar chamado")
		}
		return
	}

	response.Success(w, http.StatusOK, "Chamado encerrado com sucesso", ticket)
}

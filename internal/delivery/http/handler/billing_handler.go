package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/delivery/http/middleware"
	"dental-clinic-service/internal/service"
	"dental-clinic-service/internal/usecase"
	"dental-clinic-service/pkg/response"
	"dental-clinic-service/pkg/validator"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	checkout, err := h.billingUsecase.CreateCheckout(r.Context(), clinicID, &req)
	if err != nil {
		h.writeBillingError(w, err, "Falha ao criar sessão de pagamento")
		return
	}

	response.Success(w, http.StatusCreated, "Sessão de pagamento criada com sucesso", checkout)
}

func (h *BillingHandler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	clinic, err := h.billingUsecase.CancelSubscription(r.Context(), clinicID)
	if err != nil {
		h.writeBillingError(w, err, "Falha ao cancelar assinatura")
		return
	}

	response.Success(w, http.StatusOK, "Assinatura marcada para cancelamento", clinic)
}

func (h *BillingHandler) ResumeSubscription(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	clinic, err := h.billingUsecase.ResumeSubscription(r.Context(), clinicID)
	if err != nil {
		h.writeBillingError(w, err, "Falha ao retomar assinatura")
		return
	}

	response.Success(w, http.StatusOK, "Assinatura retomada com sucesso", clinic)
}

func (h *BillingHandler) writeBillingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case err == usecase.ErrClinicNotFound:
		response.NotFound(w, "Clínica não encontrada")
	case err == usecase.ErrNoSubscription:
		response.Error(w, http.StatusBadRequest, "Clínica não possui assinatura ativa", nil)
	case err == usecase.ErrCancelAlreadySet:
		response.Conflict(w, "Assinatura já marcada para cancelamento")
	case err == usecase.ErrSubscriptionActive:
		response.Conflict(w, "Assinatura não está marcada para cancelamento")
	case errors.Is(err, service.ErrPaymentProvider):
		response.BadGateway(w, "Falha ao comunicar com o provedor de pagamento")
	default:
		response.InternalServerError(w, fallback)
	}
}

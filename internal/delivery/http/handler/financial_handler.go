package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/delivery/http/middleware"
	"dental-clinic-service/internal/service"
	"dental-clinic-service/internal/usecase"
	"dental-clinic-service/pkg/response"
	"dental-clinic-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type FinancialHandler struct {
	financialUsecase usecase.FinancialUsecase
	validator        *validator.CustomValidator
}

func NewFinancialHandler(financialUsecase usecase.FinancialUsecase, validator *validator.CustomValidator) *FinancialHandler {
	return &FinancialHandler{
		financialUsecase: financialUsecase,
		validator:        validator,
	}
}

func (h *FinancialHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.financialUsecase.CreatePayment(r.Context(), clinicID, userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Valor do pagamento deve ser positivo", nil)
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Data de pagamento inválida, use o formato YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Falha ao registrar pagamento")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pagamento registrado com sucesso", payment)
}

func (h *FinancialHandler) GetAllPayments(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	payments, err := h.financialUsecase.ListPayments(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar pagamentos")
		return
	}

	response.Success(w, http.StatusOK, "Pagamentos recuperados com sucesso", payments)
}

func (h *FinancialHandler) GetReceiptPDF(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	paymentID, err := uuid.Parse(mux.Vars(r)["paymentId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de pagamento inválido", nil)
		return
	}

	content, err := h.financialUsecase.GetReceiptPDF(r.Context(), clinicID, paymentID)
	if err != nil {
		switch {
		case err == usecase.ErrPaymentNotFound:
			response.NotFound(w, "Pagamento não encontrado")
		case errors.Is(err, service.ErrPDFRenderer):
			response.BadGateway(w, "Falha ao gerar o PDF do recibo")
		default:
			response.InternalServerError(w, "Falha ao gerar recibo")
		}
		return
	}

	response.PDF(w, fmt.Sprintf("recibo-%s.pdf", paymentID), content)
}

func (h *FinancialHandler) GetReportPDF(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		response.Error(w, http.StatusBadRequest, "Parâmetros from e to são obrigatórios", nil)
		return
	}

	content, err := h.financialUsecase.GetReportPDF(r.Context(), clinicID, from, to)
	if err != nil {
		switch {
		case err == usecase.ErrInvalidPeriod:
			response.Error(w, http.StatusBadRequest, "Período inválido, use datas no formato YYYY-MM-DD", nil)
		case errors.Is(err, service.ErrPDFRenderer):
			response.BadGateway(w, "Falha ao gerar o PDF do relatório")
		default:
			response.InternalServerError(w, "Falha ao gerar relatório")
		}
		return
	}

	response.PDF(w, fmt.Sprintf("relatorio-%s-%s.pdf", from, to), content)
}

package handler

import (
	"net/http"
	"strconv"

	"dental-clinic-service/internal/delivery/http/middleware"
	"dental-clinic-service/internal/usecase"
	"dental-clinic-service/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

func (h *AuditLogHandler) GetRecentLogs(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Parâmetro limit inválido", nil)
			return
		}
		limit = parsed
	}

	logs, err := h.auditLogUsecase.ListRecent(r.Context(), clinicID, limit)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar registros de auditoria")
		return
	}

	response.Success(w, http.StatusOK, "Registros de auditoria recuperados com sucesso", logs)
}

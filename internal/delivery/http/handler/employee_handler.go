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

type EmployeeHandler struct {
	employeeUsecase usecase.EmployeeUsecase
	validator       *validator.CustomValidator
}

func NewEmployeeHandler(employeeUsecase usecase.EmployeeUsecase, validator *validator.CustomValidator) *EmployeeHandler {
	return &EmployeeHandler{
		employeeUsecase: employeeUsecase,
		validator:       validator,
	}
}

func (h *EmployeeHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.CreateEmployee(r.Context(), clinicID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "E-mail já cadastrado")
		default:
			response.InternalServerError(w, "Falha ao cadastrar funcionário")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Funcionário cadastrado com sucesso", employee)
}

func (h *EmployeeHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	employeeID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de funcionário inválido", nil)
		return
	}

	employee, err := h.employeeUsecase.GetEmployee(r.Context(), clinicID, employeeID)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Funcionário não encontrado")
		default:
			response.InternalServerError(w, "Falha ao buscar funcionário")
		}
		return
	}

	response.Success(w, http.StatusOK, "Funcionário recuperado com sucesso", employee)
}

func (h *EmployeeHandler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	employees, err := h.employeeUsecase.ListEmployees(r.Context(), clinicID)
	if err != nil {
		response.InternalServerError(w, "Falha ao listar funcionários")
		return
	}

	response.Success(w, http.StatusOK, "Funcionários recuperados com sucesso", employees)
}

func (h *EmployeeHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	employeeID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de funcionário inválido", nil)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.employeeUsecase.UpdateEmployee(r.Context(), clinicID, employeeID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Funcionário não encontrado")
		default:
			response.InternalServerError(w, "Falha ao atualizar funcionário")
		}
		return
	}

	response.Success(w, http.StatusOK, "Funcionário atualizado com sucesso", employee)
}

func (h *EmployeeHandler) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	clinicID, ok := middleware.GetClinicIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	employeeID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID de funcionário inválido", nil)
		return
	}

	if err := h.employeeUsecase.DeactivateEmployee(r.Context(), clinicID, employeeID); err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Funcionário não encontrado")
		default:
			response.InternalServerError(w, "Falha ao desativar funcionário")
		}
		return
	}

	response.Success(w, http.StatusOK, "Funcionário desativado com sucesso", nil)
}

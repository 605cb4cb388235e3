package handler

import (
	"encoding/json"
	"net/http"

	"dental-clinic-service/internal/delivery/dto"
	"dental-clinic-service/internal/delivery/http/middleware"
	"dental-clinic-service/internal/usecase"
	"dental-clinic-service/pkg/response"
	"dental-clinic-service/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) RegisterClinic(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.RegisterClinic(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "E-mail já cadastrado")
		default:
			response.InternalServerError(w, "Falha ao registrar clínica")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Clínica registrada com sucesso", user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, "E-mail ou senha inválidos")
		case usecase.ErrUserInactive:
			response.Forbidden(w, "Conta desativada")
		default:
			response.InternalServerError(w, "Falha ao efetuar login")
		}
		return
	}

	response.Success(w, http.StatusOK, "Login efetuado com sucesso", tokens)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), tokenID, tokenID); err != nil {
		response.InternalServerError(w, "Falha ao efetuar logout")
		return
	}

	response.Success(w, http.StatusOK, "Logout efetuado com sucesso", nil)
}

func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, "Token inválido ou revogado")
		default:
			response.InternalServerError(w, "Falha ao renovar token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token renovado com sucesso", tokens)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "Usuário não encontrado")
		default:
			response.InternalServerError(w, "Falha ao buscar usuário")
		}
		return
	}

	response.Success(w, http.StatusOK, "Usuário recuperado com sucesso", user)
}

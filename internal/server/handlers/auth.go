package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/iudanet/blogful/internal/server/auth"
	"github.com/iudanet/blogful/pkg/api"
)

// MaxLoginBodyBytes ограничивает размер тела запроса входа
const MaxLoginBodyBytes = 1 << 20

// LoginService проверяет учетные данные и выпускает токен
type LoginService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger  *slog.Logger
	service LoginService
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, service LoginService) *AuthHandler {
	return &AuthHandler{
		logger:  logger,
		service: service,
	}
}

// Login обрабатывает POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, MaxLoginBodyBytes)

	// Пустое тело обрабатываем как пустой объект: ответом будет Missing 'user_name'
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.WarnContext(ctx, "login request body too large", slog.Int64("limit", tooLarge.Limit))
			SendError(h.logger, w, MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		SendError(h.logger, w, MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.service.Login(ctx, req.UserName, req.Password)
	if err != nil {
		h.handleLoginError(ctx, w, req.UserName, err)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully", slog.String("user_name", req.UserName))

	sendJSON(h.logger, w, api.LoginResponse{AuthToken: token}, http.StatusOK)
}

func (h *AuthHandler) handleLoginError(ctx context.Context, w http.ResponseWriter, username string, err error) {
	reason := auth.FailureReason(err)

	var missing *auth.MissingFieldError
	switch {
	case errors.As(err, &missing):
		h.logger.WarnContext(ctx, "login rejected", slog.String("reason", reason), slog.String("field", missing.Field))
		SendError(h.logger, w, fmt.Sprintf("Missing '%s' in request body", missing.Field), http.StatusBadRequest)

	case errors.Is(err, auth.ErrInvalidCredentials):
		// unknown_user и wrong_password различаются только в логах
		h.logger.WarnContext(ctx, "login failed",
			slog.String("reason", reason),
			slog.String("user_name", username))
		SendError(h.logger, w, MsgIncorrectCredentials, http.StatusBadRequest)

	default:
		h.logger.ErrorContext(ctx, "login error",
			slog.String("reason", reason),
			slog.String("user_name", username),
			slog.Any("error", err))
		SendError(h.logger, w, MsgInternalError, http.StatusInternalServerError)
	}
}

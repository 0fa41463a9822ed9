package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/blogful/internal/models"
	"github.com/iudanet/blogful/internal/server/storage"
	"github.com/iudanet/blogful/pkg/api"
)

// UserGetter возвращает пользователя по идентификатору
type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// UserHandler обрабатывает запросы к профилю пользователя
type UserHandler struct {
	logger *slog.Logger
	users  UserGetter
}

// NewUserHandler создает новый handler профиля
func NewUserHandler(logger *slog.Logger, users UserGetter) *UserHandler {
	return &UserHandler{
		logger: logger,
		users:  users,
	}
}

// Me обрабатывает GET /api/users/me
// Требует AuthMiddleware: user_id берется из контекста
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		SendError(h.logger, w, MsgUnauthorized, http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "token user not found", slog.Int64("user_id", userID))
			SendError(h.logger, w, MsgUserNotFound, http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Int64("user_id", userID), slog.Any("error", err))
		SendError(h.logger, w, MsgInternalError, http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.UserResponse{
		ID:          user.ID,
		UserName:    user.UserName,
		FullName:    user.FullName,
		Nickname:    user.Nickname,
		DateCreated: user.DateCreated,
	}, http.StatusOK)
}

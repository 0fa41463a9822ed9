package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/blogful/pkg/api"
)

// Client-facing error messages
const (
	MsgIncorrectCredentials = "Incorrect user_name or password"
	MsgInvalidJSON          = "Invalid JSON in request body"
	MsgBodyTooLarge         = "Request body too large"
	MsgInternalError        = "Internal server error"
	MsgUnauthorized         = "Unauthorized request"
	MsgUserNotFound         = "User doesn't exist"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// SendError отправляет JSON ответ с ошибкой
func SendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Error: message}, statusCode)
}

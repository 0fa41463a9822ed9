package api

import "time"

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	UserName string `json:"user_name"` // имя пользователя
	Password string `json:"password"`  // пароль в открытом виде, не логируется
}

// LoginResponse представляет ответ с подписанным токеном
type LoginResponse struct {
	AuthToken string `json:"authToken"` // JWT (HS256)
}

// UserResponse представляет публичный профиль пользователя
type UserResponse struct {
	DateCreated time.Time `json:"date_created"`
	UserName    string    `json:"user_name"`
	FullName    string    `json:"full_name"`
	Nickname    string    `json:"nickname,omitempty"`
	ID          int64     `json:"id"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"` // сообщение для клиента
}

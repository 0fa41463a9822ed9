package models

import "time"

// User представляет учетную запись пользователя блога
type User struct {
	DateCreated  time.Time  `json:"date_created"`            // время создания
	DateModified *time.Time `json:"date_modified,omitempty"` // время последнего изменения
	UserName     string     `json:"user_name"`               // уникальное имя пользователя
	FullName     string     `json:"full_name"`               // отображаемое имя
	Nickname     string     `json:"nickname,omitempty"`      // необязательный псевдоним
	PasswordHash string     `json:"-"`                       // bcrypt хеш пароля
	ID           int64      `json:"id"`                      // идентификатор пользователя
}

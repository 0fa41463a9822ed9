// Package validation проверяет данные новых учетных записей перед сохранением.
// Вход по паролю формат user_name не проверяет: неизвестное имя
// просто не найдется в хранилище.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// UserNamePattern определяет допустимый формат user_name
// Латинские буквы, цифры, '_', '-', '.'; начинается с буквы или цифры
var UserNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_.-]*$`)

const (
	// MinUserNameLen минимальная длина user_name
	MinUserNameLen = 3
	// MaxUserNameLen максимальная длина user_name
	MaxUserNameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxPasswordLen bcrypt учитывает только первые 72 байта
	MaxPasswordLen = 72
	// MaxFullNameLen максимальная длина полного имени
	MaxFullNameLen = 128
)

// ValidateUserName проверяет, что user_name соответствует требованиям
func ValidateUserName(userName string) error {
	if userName == "" {
		return fmt.Errorf("user_name cannot be empty")
	}

	if len(userName) < MinUserNameLen {
		return fmt.Errorf("user_name must be at least %d characters long", MinUserNameLen)
	}

	if len(userName) > MaxUserNameLen {
		return fmt.Errorf("user_name must not exceed %d characters", MaxUserNameLen)
	}

	if !UserNamePattern.MatchString(userName) {
		return fmt.Errorf("user_name can only contain letters (a-z, A-Z), numbers (0-9), '_', '-' and '.', and must start with a letter or number")
	}

	return nil
}

// ValidatePassword проверяет требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d bytes", MaxPasswordLen)
	}

	if strings.TrimSpace(password) != password {
		return fmt.Errorf("password must not start or end with a space")
	}

	return nil
}

// ValidateFullName проверяет полное имя пользователя
func ValidateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("full_name cannot be empty")
	}

	if utf8.RuneCountInString(fullName) > MaxFullNameLen {
		return fmt.Errorf("full_name must not exceed %d characters", MaxFullNameLen)
	}

	return nil
}

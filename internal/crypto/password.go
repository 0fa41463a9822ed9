package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash означает, что сохраненный хеш пароля поврежден или не является bcrypt хешем.
// Это ошибка данных на сервере, а не неверный пароль пользователя.
var ErrMalformedHash = errors.New("malformed password hash")

// PasswordCost - стоимость bcrypt для новых хешей
const PasswordCost = bcrypt.DefaultCost

// HashPassword хеширует пароль с использованием bcrypt
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохраненного bcrypt хеша.
// Сравнение выполняется bcrypt за постоянное время.
// Несовпадение пароля возвращает (false, nil); поврежденный хеш - ErrMalformedHash.
func VerifyPassword(hash, password string) (bool, error) {
	if hash == "" {
		return false, fmt.Errorf("%w: empty hash", ErrMalformedHash)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
}

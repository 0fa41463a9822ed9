package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims представляет JWT claims токена аутентификации:
// user_id - идентификатор пользователя, sub - имя пользователя.
// Порядок полей задает порядок ключей в payload (user_id, iat, exp, sub),
// он совпадает с токенами jsonwebtoken.
type Claims struct {
	UserID    int64            `json:"user_id"`
	IssuedAt  *jwt.NumericDate `json:"iat,omitempty"`
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`
	Subject   string           `json:"sub"`
}

var _ jwt.Claims = Claims{}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) { return c.IssuedAt, nil }

func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

func (c Claims) GetIssuer() (string, error) { return "", nil }

func (c Claims) GetSubject() (string, error) { return c.Subject, nil }

func (c Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// TokenConfig содержит конфигурацию для подписи токенов
type TokenConfig struct {
	Secret []byte
	// TTL задает срок жизни токена; 0 - токен без exp
	TTL time.Duration
}

// TokenIssuer выпускает и проверяет HS256 токены.
// Для одинаковых входных данных и показаний часов результат побайтно одинаков.
type TokenIssuer struct {
	now func() time.Time
	cfg TokenConfig
}

// NewTokenIssuer создает TokenIssuer с системными часами
func NewTokenIssuer(cfg TokenConfig) *TokenIssuer {
	return &TokenIssuer{cfg: cfg, now: time.Now}
}

// WithClock возвращает копию issuer с заданным источником времени
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	c := *i
	c.now = now
	return &c
}

// Issue подписывает токен с claim user_id и subject = username
func (i *TokenIssuer) Issue(userID int64, username string) (string, error) {
	if len(i.cfg.Secret) == 0 {
		return "", ErrSigningKeyMissing
	}

	now := i.now()
	claims := Claims{
		UserID:   userID,
		IssuedAt: jwt.NewNumericDate(now),
		Subject:  username,
	}
	if i.cfg.TTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.cfg.TTL))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(i.cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify проверяет подпись и срок действия токена и возвращает его claims
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	if len(i.cfg.Secret) == 0 {
		return nil, ErrSigningKeyMissing
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

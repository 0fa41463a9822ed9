package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/blogful/internal/models"
	"github.com/iudanet/blogful/internal/server/storage"
)

// mockUserFinder is a mock implementation of UserFinder for testing
type mockUserFinder struct {
	users map[string]*models.User // user_name -> User
	err   error
	calls int
}

func (m *mockUserFinder) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

// mockIssuer is a mock implementation of Issuer for testing
type mockIssuer struct {
	err      error
	calls    int
	userID   int64
	username string
}

func (m *mockIssuer) Issue(userID int64, username string) (string, error) {
	m.calls++
	m.userID = userID
	m.username = username
	if m.err != nil {
		return "", m.err
	}
	return "signed-token", nil
}

func newAlice(t *testing.T) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: 7, UserName: "alice", FullName: "Alice Liddell", PasswordHash: string(hash)}
}

func TestService_Login_Success(t *testing.T) {
	users := &mockUserFinder{users: map[string]*models.User{"alice": newAlice(t)}}
	issuer := &mockIssuer{}
	svc := NewService(users, issuer)

	token, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, int64(7), issuer.userID)
	assert.Equal(t, "alice", issuer.username)
}

func TestService_Login_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
	}{
		{name: "missing user_name", password: "secret123", wantField: FieldUserName},
		{name: "missing password", username: "alice", wantField: FieldPassword},
		{name: "both missing reports user_name first", wantField: FieldUserName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserFinder{users: map[string]*models.User{}}
			issuer := &mockIssuer{}
			svc := NewService(users, issuer)

			_, err := svc.Login(context.Background(), tt.username, tt.password)

			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.wantField, missing.Field)

			// никаких обращений к хранилищу и подписи
			assert.Zero(t, users.calls)
			assert.Zero(t, issuer.calls)
		})
	}
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	tests := []struct {
		wantErr  error
		name     string
		username string
		password string
	}{
		{name: "unknown user", username: "user-not", password: "password-not", wantErr: ErrUnknownUser},
		{name: "wrong password", username: "alice", password: "wrong", wantErr: ErrWrongPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issuer := &mockIssuer{}
			svc := NewService(&mockUserFinder{users: map[string]*models.User{"alice": newAlice(t)}}, issuer)

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Zero(t, issuer.calls)
		})
	}
}

func TestService_Login_StorageError(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := NewService(&mockUserFinder{err: dbErr}, &mockIssuer{})

	_, err := svc.Login(context.Background(), "alice", "secret123")

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_ContextDeadline(t *testing.T) {
	svc := NewService(&mockUserFinder{err: context.DeadlineExceeded}, &mockIssuer{})

	_, err := svc.Login(context.Background(), "alice", "secret123")

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_Login_CorruptHash(t *testing.T) {
	user := &models.User{ID: 7, UserName: "alice", PasswordHash: "not-a-bcrypt-hash"}
	issuer := &mockIssuer{}
	svc := NewService(&mockUserFinder{users: map[string]*models.User{"alice": user}}, issuer)

	_, err := svc.Login(context.Background(), "alice", "secret123")

	var verificationErr *VerificationError
	require.ErrorAs(t, err, &verificationErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, issuer.calls)
}

func TestService_Login_SigningError(t *testing.T) {
	issuer := &mockIssuer{err: ErrSigningKeyMissing}
	svc := NewService(&mockUserFinder{users: map[string]*models.User{"alice": newAlice(t)}}, issuer)

	_, err := svc.Login(context.Background(), "alice", "secret123")

	var signingErr *SigningError
	require.ErrorAs(t, err, &signingErr)
	assert.ErrorIs(t, err, ErrSigningKeyMissing)
}

func TestService_Login_WithRealIssuer(t *testing.T) {
	issuer := newTestIssuer("test-secret", 0)
	svc := NewService(&mockUserFinder{users: map[string]*models.User{"alice": newAlice(t)}}, issuer)

	first, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	// повторный вход дает тот же токен
	assert.Equal(t, first, second)

	claims, err := issuer.Verify(first)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Subject)
}

func TestFailureReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: &MissingFieldError{Field: FieldPassword}, want: "missing_field"},
		{err: ErrUnknownUser, want: "unknown_user"},
		{err: ErrWrongPassword, want: "wrong_password"},
		{err: &StorageError{Err: errors.New("db")}, want: "storage_error"},
		{err: &VerificationError{Err: errors.New("hash")}, want: "verification_error"},
		{err: &SigningError{Err: ErrSigningKeyMissing}, want: "signing_error"},
		{err: errors.New("boom"), want: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureReason(tt.err))
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/blogful/pkg/api"
)

func TestUserHandler_Me(t *testing.T) {
	users := newAliceStorage(t)
	handler := NewUserHandler(setupTestLogger(), users)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = req.WithContext(WithUser(req.Context(), 7, "alice"))
	w := httptest.NewRecorder()

	handler.Me(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.UserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "alice", resp.UserName)
	assert.Equal(t, "Alice Liddell", resp.FullName)
	assert.True(t, fixedNow.Equal(resp.DateCreated))
	assert.NotContains(t, w.Body.String(), "$2a$", "password hash must not leak")
}

func TestUserHandler_Me_Errors(t *testing.T) {
	tests := []struct {
		ctx          func(context.Context) context.Context
		storageErr   error
		name         string
		expectedCode int
	}{
		{
			name:         "no user in context",
			ctx:          func(ctx context.Context) context.Context { return ctx },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "user deleted",
			ctx:          func(ctx context.Context) context.Context { return WithUser(ctx, 42, "ghost") },
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "storage failure",
			ctx:          func(ctx context.Context) context.Context { return WithUser(ctx, 7, "alice") },
			storageErr:   errors.New("disk I/O error"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newAliceStorage(t)
			users.getUserError = tt.storageErr
			handler := NewUserHandler(setupTestLogger(), users)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			req = req.WithContext(tt.ctx(req.Context()))
			w := httptest.NewRecorder()

			handler.Me(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.NotEmpty(t, decodeError(t, w))
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := WithUser(context.Background(), 7, "alice")

	userID, ok := GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)

	username, ok := GetUsername(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", username)

	_, ok = GetUserID(context.Background())
	assert.False(t, ok)
}

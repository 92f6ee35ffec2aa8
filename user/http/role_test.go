package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algocode/backend/user/auth"
	userhttp "github.com/algocode/backend/user/http"
)

func getRole(t *testing.T, claims *auth.JwtClaims) string {
	t.Helper()

	handler := userhttp.NewUserHttpHandler(nil, []byte("test"))
	req := httptest.NewRequest(http.MethodGet, "/users/role", nil)
	if claims != nil {
		ctx := context.WithValue(req.Context(), auth.CtxJwtClaimsKey, claims)
		req = req.WithContext(ctx)
	}

	w := httptest.NewRecorder()
	handler.GetRole(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Status string `json:"status"`
		Data   struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "success", response.Status)
	return response.Data.Role
}

func TestGetRoleHttp(t *testing.T) {
	t.Run("guest for unauthenticated request", func(t *testing.T) {
		assert.Equal(t, "guest", getRole(t, nil))
	})

	t.Run("user for regular user", func(t *testing.T) {
		claims := &auth.JwtClaims{
			Username: "testuser",
			Email:    "test@example.com",
			UUID:     uuid.New().String(),
		}
		assert.Equal(t, "user", getRole(t, claims))
	})

	t.Run("admin for admin user", func(t *testing.T) {
		claims := &auth.JwtClaims{
			Username: "admin",
			Email:    "admin@example.com",
			UUID:     uuid.New().String(),
			IsAdmin:  true,
		}
		assert.Equal(t, "admin", getRole(t, claims))
	})
}

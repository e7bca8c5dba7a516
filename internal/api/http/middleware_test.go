package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/security"
)

type mockTokenManager struct {
	mock.Mock
}

func (m *mockTokenManager) GenerateAccessToken(userID, email string, role domain.UserRole) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *mockTokenManager) GenerateRefreshToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *mockTokenManager) ValidateToken(token string) (*security.UserClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

func echoIdentity() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"user_id": UserIDFrom(r.Context()),
			"role":    RoleFrom(r.Context()),
		})
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("Missing Header", func(t *testing.T) {
		tm := new(mockTokenManager)
		handler := Authenticate(tm)(echoIdentity())

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Invalid Token", func(t *testing.T) {
		tm := new(mockTokenManager)
		tm.On("ValidateToken", "bad").Return(nil, security.ErrInvalidToken)
		handler := Authenticate(tm)(echoIdentity())

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer bad")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Refresh Token Rejected", func(t *testing.T) {
		tm := new(mockTokenManager)
		tm.On("ValidateToken", "refresh-token").Return(&security.UserClaims{
			UserID: "u1",
			Type:   security.TokenTypeRefresh,
		}, nil)
		handler := Authenticate(tm)(echoIdentity())

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer refresh-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Injects Identity", func(t *testing.T) {
		tm := new(mockTokenManager)
		tm.On("ValidateToken", "good").Return(&security.UserClaims{
			UserID: "u1",
			Type:   security.TokenTypeAccess,
			Role:   domain.UserRoleFarmer,
		}, nil)
		handler := Authenticate(tm)(echoIdentity())

		req := httptest.NewRequest(http.MethodGet, "/profile", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"user_id":"u1"`)
	})
}

func TestRequireAdmin(t *testing.T) {
	tm := new(mockTokenManager)

	run := func(role domain.UserRole) *httptest.ResponseRecorder {
		tm.ExpectedCalls = nil
		tm.On("ValidateToken", "tok").Return(&security.UserClaims{
			UserID: "u1",
			Type:   security.TokenTypeAccess,
			Role:   role,
		}, nil)
		handler := Authenticate(tm)(RequireAdmin(echoIdentity()))

		req := httptest.NewRequest(http.MethodGet, "/admin/tools", nil)
		req.Header.Set("Authorization", "Bearer tok")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusForbidden, run(domain.UserRoleFarmer).Code)
	assert.Equal(t, http.StatusOK, run(domain.UserRoleAdmin).Code)
}

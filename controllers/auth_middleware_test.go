package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fixstore/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expiredTokenFor(t *testing.T, userID int64) string {
	t.Helper()
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(conf.Security.JwtSecret))
	require.NoError(t, err)
	return signed
}

// Todas as causas de rejeição respondem 401 com a mesma mensagem.
func TestAuthRequired_RejectionMatrix(t *testing.T) {
	r, database := setupServer(t)
	registerUser(t, r, "A", "a@x.com", "password1")

	var user models.User
	require.NoError(t, database.Where("email = ?", "a@x.com").First(&user).Error)

	deletedToken := registerUser(t, r, "B", "b@x.com", "password1")
	require.NoError(t, database.Where("email = ?", "b@x.com").Delete(&models.User{}).Error)

	cases := []struct {
		name    string
		headers map[string]string
	}{
		{"sem token", nil},
		{"token malformado", bearer("isso.nao.e.jwt")},
		{"token expirado", bearer(expiredTokenFor(t, user.ID))},
		{"conta apagada", bearer(deletedToken)},
	}

	var bodies []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/me", nil, tc.headers)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			bodies = append(bodies, w.Body.String())
		})
	}
	for _, b := range bodies[1:] {
		assert.Equal(t, bodies[0], b)
	}
}

// Sem header Authorization o guard aceita o cookie de sessão.
func TestAuthRequired_CookieFallback(t *testing.T) {
	r, _ := setupServer(t)
	token := registerUser(t, r, "A", "a@x.com", "password1")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

// O sentinela de logout no cookie não é um token.
func TestAuthRequired_LogoutSentinelCookie(t *testing.T) {
	r, _ := setupServer(t)
	registerUser(t, r, "A", "a@x.com", "password1")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: logoutSentinel})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminizer(t *testing.T) {
	r, database := setupServer(t)
	userToken := registerUser(t, r, "A", "a@x.com", "password1")
	adminToken := registerUser(t, r, "Root", "root@x.com", "password1")
	promoteToAdmin(t, database, "root@x.com")

	// Usuário comum: 403.
	w := doJSON(t, r, http.MethodGet, "/admin/users", nil, bearer(userToken))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin: 200.
	w = doJSON(t, r, http.MethodGet, "/admin/users", nil, bearer(adminToken))
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Sem token: 401 antes do check de role.
	w = doJSON(t, r, http.MethodGet, "/admin/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

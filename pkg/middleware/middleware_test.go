package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"menuboard/internal/models/db_models"
	"menuboard/pkg/utils"
)

func newRouter(tokens *utils.TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger(zap.NewNop()))
	r.GET("/me", JWTAuthMiddleware(tokens), func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": actor.Role, "unit": actor.UnitID.String()})
	})
	r.GET("/admin", JWTAuthMiddleware(tokens), RoleMiddleware(db_models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	r := newRouter(tokens)
	unit := uuid.New()

	token, err := tokens.CreateToken(uuid.New(), "unit-admin", unit)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), unit.String())
	require.NotEmpty(t, w.Header().Get(TraceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthMiddleware_Rejects(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	r := newRouter(tokens)

	other, err := utils.NewTokenIssuer("other-secret", time.Hour).CreateToken(uuid.New(), "admin", uuid.New())
	require.NoError(t, err)

	for _, header := range []string{"", "Basic abc", "Bearer garbage", "Bearer " + other} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestJWTAuthMiddleware_RejectsMalformedIDClaims(t *testing.T) {
	tokens := utils.NewTokenIssuer("secret", time.Hour)
	r := newRouter(tokens)

	sign := func(accountID, unitID string) string {
		claims := utils.Claims{
			AccountID: accountID,
			Role:      "admin",
			UnitID:    unitID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		return s
	}

	for _, token := range []string{
		sign(uuid.New().String(), "not-a-uuid"),
		sign("not-a-uuid", uuid.New().String()),
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Invalid or expired token")
	}
}

func TestTraceIDMiddleware_KeepsIncomingID(t *testing.T) {
	r := newRouter(utils.NewTokenIssuer("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(TraceIDHeader, "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "trace-123", w.Header().Get(TraceIDHeader))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadloft/internal/infrastructure/auth"
	"leadloft/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) Fatal(msg string, args ...any)                   {}
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
func (n noopLogger) With(args ...any) logger.Interface             { return n }
func (n noopLogger) Named(name string) logger.Interface            { return n }

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService("test-secret", 60)
	m := NewAuthMiddleware(jwtService, noopLogger{})

	newEngine := func() *gin.Engine {
		engine := gin.New()
		engine.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id":   UserID(c),
				"agency_id": AgencyID(c),
			})
		})
		return engine
	}

	t.Run("passes valid tokens and exposes identity", func(t *testing.T) {
		token, err := jwtService.Generate(10, 1, "owner")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"agency_id":1`)
		assert.Contains(t, w.Body.String(), `"user_id":10`)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		newEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		newEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a tampered token", func(t *testing.T) {
		other := auth.NewJWTService("other-secret", 60)
		token, err := other.Generate(10, 1, "owner")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newEngine().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthMiddleware_RequireOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := auth.NewJWTService("test-secret", 60)
	m := NewAuthMiddleware(jwtService, noopLogger{})

	engine := gin.New()
	engine.POST("/owner-only", m.RequireAuth(), m.RequireOwner(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("allows owners", func(t *testing.T) {
		token, err := jwtService.Generate(10, 1, "owner")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/owner-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("blocks regular members", func(t *testing.T) {
		token, err := jwtService.Generate(11, 1, "member")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/owner-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

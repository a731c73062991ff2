package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-service/internal/app/config"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values map[string]string
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.values[key] = fmt.Sprintf("%v", value)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestAuthenticate(t *testing.T) {
	secret := "test-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	}
	redisRepository := &fakeRedisRepository{values: make(map[string]string)}
	mw := NewMiddlewares(zap.NewNop(), redisRepository, internalConfig)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(constvars.ContextKeyUserID).(string)
		assert.True(t, ok, "user id should be set on the context")
		assert.NotEmpty(t, userID)

		role, ok := r.Context().Value(constvars.ContextKeyRole).(string)
		assert.True(t, ok, "role should be set on the context")
		assert.Equal(t, constvars.RoleDoctor, role)

		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid Token With Live Session", func(t *testing.T) {
		token, err := utils.GenerateJWT("doctor-1", constvars.RoleDoctor, secret, 1)
		require.NoError(t, err)
		redisRepository.values[fmt.Sprintf(constvars.RedisSessionKeyFormat, "doctor-1")] = token

		req := httptest.NewRequest("GET", "/api/v1/slots", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		mw.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/slots", nil)

		rr := httptest.NewRecorder()
		mw.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/slots", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		mw.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Valid Token Without Session", func(t *testing.T) {
		token, err := utils.GenerateJWT("doctor-2", constvars.RoleDoctor, secret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/v1/slots", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

		rr := httptest.NewRecorder()
		mw.Authenticate(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireRole(t *testing.T) {
	internalConfig := &config.InternalConfig{JWT: config.JWT{Secret: "s", ExpTimeInHour: 1}}
	mw := NewMiddlewares(zap.NewNop(), &fakeRedisRepository{values: make(map[string]string)}, internalConfig)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	withRole := func(req *http.Request, role string) *http.Request {
		ctx := context.WithValue(req.Context(), constvars.ContextKeyUserID, "user-1")
		ctx = context.WithValue(ctx, constvars.ContextKeyRole, role)
		return req.WithContext(ctx)
	}

	t.Run("Doctor Route Rejects Patient", func(t *testing.T) {
		req := withRole(httptest.NewRequest("POST", "/api/v1/slots/generate/abc", nil), constvars.RolePatient)

		rr := httptest.NewRecorder()
		mw.RequireDoctor(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Doctor Route Allows Doctor", func(t *testing.T) {
		req := withRole(httptest.NewRequest("POST", "/api/v1/slots/generate/abc", nil), constvars.RoleDoctor)

		rr := httptest.NewRecorder()
		mw.RequireDoctor(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Patient Route Allows Doctor", func(t *testing.T) {
		req := withRole(httptest.NewRequest("POST", "/api/v1/appointments", nil), constvars.RoleDoctor)

		rr := httptest.NewRecorder()
		mw.RequirePatient(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing Role", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/appointments", nil)

		rr := httptest.NewRecorder()
		mw.RequirePatient(okHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

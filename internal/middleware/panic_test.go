package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/middleware"
)

func TestPanicRecoveryMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/hub/v1/meta/roles", nil)
	rec := httptest.NewRecorder()

	middleware.PanicRecoveryMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, apierrors.InternalServerErr, decodeError(t, rec).Error.Code)
}

func TestPanicRecoveryPassthrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/hub/v1/meta/roles", nil)
	rec := httptest.NewRecorder()

	middleware.PanicRecoveryMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}

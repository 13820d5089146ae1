package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/argha-paul/youtube-adInsights/interfaces/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Auth())
	router.GET("/protected", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func TestAuth_MissingHeader(t *testing.T) {
	router := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"response_message":"Unauthorized"`)
}

func TestAuth_MalformedToken(t *testing.T) {
	router := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "That's not even a token")
}

// Concurrent unauthorized requests must each get their own rejection message;
// a missing-header caller must never see another caller's token error.
func TestAuth_ConcurrentRejectionsAreIsolated(t *testing.T) {
	router := newAuthRouter()

	const iterations = 100
	var wg sync.WaitGroup
	missingBodies := make([]string, iterations)
	malformedBodies := make([]string, iterations)

	for i := 0; i < iterations; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			router.ServeHTTP(w, req)
			missingBodies[i] = w.Body.String()
		}(i)
		go func(i int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer not-a-token")
			router.ServeHTTP(w, req)
			malformedBodies[i] = w.Body.String()
		}(i)
	}
	wg.Wait()

	for i := 0; i < iterations; i++ {
		assert.Contains(t, missingBodies[i], `"response_message":"Unauthorized"`)
		assert.NotContains(t, missingBodies[i], "That's not even a token")
		assert.Contains(t, malformedBodies[i], "That's not even a token")
	}
}

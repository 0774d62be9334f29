package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"simplepay/internal/adapter/http/middleware"
	redisStore "simplepay/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store middleware.RateLimitStore, subject string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	r.GET("/test",
		func(c *gin.Context) {
			if s := c.GetHeader("X-Test-Subject"); s != "" {
				c.Set(middleware.CtxSubject, s)
			} else if subject != "" {
				c.Set(middleware.CtxSubject, subject)
			}
			c.Next()
		},
		middleware.RateLimiter(store, "test", rule, zerolog.Nop()),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) },
	)
	return r
}

func get(router *gin.Engine, subject string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/test", nil)
	if subject != "" {
		req.Header.Set("X-Test-Subject", subject)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := setupRateLimitRouter(redisStore.NewRateLimitStore(client), "")

	for i := 0; i < 3; i++ {
		w := get(router, "")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should succeed", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := setupRateLimitRouter(redisStore.NewRateLimitStore(client), "")
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(router, "").Code)
	}

	w := get(router, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_KeysBySubject(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	router := setupRateLimitRouter(redisStore.NewRateLimitStore(client), "")
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(router, "shop-a").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, get(router, "shop-a").Code)
	assert.Equal(t, http.StatusOK, get(router, "shop-b").Code, "each subject has its own counter")
}

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int64, time.Duration) (*redisStore.RateLimitResult, error) {
	return nil, errors.New("redis unavailable")
}

func TestRateLimiter_StoreFailureAllows(t *testing.T) {
	router := setupRateLimitRouter(failingStore{}, "shop-a")
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(router, "").Code)
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules()
	assert.Equal(t, int64(60), rules["payments_create"].Limit)
	assert.Equal(t, int64(300), rules["payments_check"].Limit)
	assert.Equal(t, int64(30), rules["node"].Limit)
	for name, rule := range rules {
		assert.Equal(t, time.Minute, rule.Window, name)
	}
}

package handler

import (
	"net/http"

	"simplepay/internal/adapter/http/middleware"
	"simplepay/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PaymentSvc     ports.PaymentService
	NodeSvc        ports.NodeService
	TokenSvc       ports.TokenService
	RateLimitStore middleware.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Metrics        http.Handler // nil = no metrics endpoint
	MetricsPath    string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.Metrics != nil {
		path := deps.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(deps.Metrics))
	}

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1",
		middleware.JWTAuth(deps.TokenSvc, deps.Logger),
		middleware.AuditLog(deps.Logger),
	)

	paymentHandler := NewPaymentHandler(deps.PaymentSvc)
	payments := v1.Group("/payments")
	{
		payments.POST("", rl("payments_create"), paymentHandler.CreatePayment)
		payments.GET("/:payment_id", rl("payments_check"), paymentHandler.GetPayment)
	}

	nodeHandler := NewNodeHandler(deps.NodeSvc)
	node := v1.Group("/node", rl("node"))
	{
		node.GET("/status", nodeHandler.GetStatus)
		node.PUT("/endpoint", nodeHandler.UpdateEndpoint)
	}

	return r
}

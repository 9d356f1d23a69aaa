package v1

import (
	"net/http"
	"time"

	"go-ats-backend/config"
	"go-ats-backend/internal/delivery/http/middleware"
	"go-ats-backend/internal/delivery/http/response"
	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	DB          *pgxpool.Pool
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		health := gin.H{"database": "up", "cache": "up"}
		code := http.StatusOK
		if deps.DB != nil {
			if err := deps.DB.Ping(c); err != nil {
				health["database"] = "down"
				code = http.StatusServiceUnavailable
			}
		}
		if err := redis.HealthCheck(c); err != nil {
			// The cache is optional; a down cache does not fail the check
			health["cache"] = "down"
		}
		if code == http.StatusOK {
			response.Success(c, code, "System operational", health)
		} else {
			response.Error(c, code, "System degraded", nil)
		}
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	NewCandidateHandler(api, deps.CandidateUC)

	return r
}

package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	tollbooth_gin "github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/echolabs-dev/echo-api/internal/handler/http/middleware"
	usecasecontract "github.com/echolabs-dev/echo-api/internal/usecase/contract"
)

type Router struct {
	authHandler  *AuthHandler
	emailHandler *EmailHandler
	authUsecase  usecasecontract.IAuthUseCase
}

func NewRouter(authUsecase usecasecontract.IAuthUseCase, emailVerUC usecasecontract.IEmailVerificationUC) *Router {
	return &Router{
		authHandler:  NewAuthHandler(authUsecase),
		emailHandler: NewEmailHandler(emailVerUC),
		authUsecase:  authUsecase,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(tollbooth_gin.LimitHandler(lmt))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Echo API",
			"version": "1.0.0",
			"status":  "Server is running!",
		})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := router.Group("/api/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.GET("/verify-email", r.emailHandler.HandleVerifyEmailToken)
		auth.POST("/resend-verification", r.emailHandler.HandleResendVerification)
	}

	// Protected routes (authentication required)
	protected := router.Group("/api/auth")
	protected.Use(middleware.AuthMiddleWare(r.authUsecase))
	{
		protected.GET("/me", r.authHandler.GetCurrentUser)
	}
}

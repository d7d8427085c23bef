package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-next/internal/cache"
	"github.com/folio-next/internal/config"
	adminhandlers "github.com/folio-next/internal/http/handlers/admin"
	publichandlers "github.com/folio-next/internal/http/handlers/public"
	"github.com/folio-next/internal/logger"
	"github.com/folio-next/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "folio"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	resetCodeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:reset_code", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	resetVerifyRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:reset_verify", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	contactRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:contact", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", publicHandler.Health)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIP), publicHandler.Login)
			auth.GET("/verify", JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), publicHandler.Verify)
			auth.POST("/logout", publicHandler.Logout)
			auth.POST("/request-reset-code", RateLimitMiddleware(redisClient, resetCodeRule, KeyByIPAndJSONField("email")), publicHandler.RequestResetCode)
			auth.POST("/verify-reset-code", RateLimitMiddleware(redisClient, resetVerifyRule, KeyByIPAndJSONField("email")), publicHandler.VerifyResetCode)
			auth.POST("/reset-password", RateLimitMiddleware(redisClient, resetVerifyRule, KeyByIPAndJSONField("email")), publicHandler.ResetPassword)
		}

		public := api.Group("/public")
		{
			public.GET("/projects", publicHandler.ListProjects)
			public.GET("/projects/:slug", publicHandler.GetProject)
			public.GET("/art-pieces", publicHandler.ListArtPieces)
			public.GET("/education", publicHandler.ListEducation)
			public.GET("/experience", publicHandler.ListExperience)
			public.GET("/tech-stack", publicHandler.ListTechStack)
			public.POST("/contact", RateLimitMiddleware(redisClient, contactRule, KeyByIP), publicHandler.SubmitContact)
			public.GET("/captcha/image", publicHandler.GetCaptcha)
		}

		admin := api.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			admin.GET("/overview", adminHandler.GetOverview)
			admin.PUT("/password", adminHandler.ChangePassword)
			admin.GET("/login-logs", adminHandler.ListLoginLogs)

			admin.GET("/projects", adminHandler.ListProjects)
			admin.GET("/projects/:id", adminHandler.GetProject)
			admin.POST("/projects", adminHandler.CreateProject)
			admin.PUT("/projects/:id", adminHandler.UpdateProject)
			admin.DELETE("/projects/:id", adminHandler.DeleteProject)

			admin.GET("/art-pieces", adminHandler.ListArtPieces)
			admin.GET("/art-pieces/:id", adminHandler.GetArtPiece)
			admin.POST("/art-pieces", adminHandler.CreateArtPiece)
			admin.PUT("/art-pieces/:id", adminHandler.UpdateArtPiece)
			admin.DELETE("/art-pieces/:id", adminHandler.DeleteArtPiece)

			admin.GET("/education", adminHandler.ListEducation)
			admin.POST("/education", adminHandler.CreateEducation)
			admin.PUT("/education/:id", adminHandler.UpdateEducation)
			admin.DELETE("/education/:id", adminHandler.DeleteEducation)

			admin.GET("/experience", adminHandler.ListExperience)
			admin.POST("/experience", adminHandler.CreateExperience)
			admin.PUT("/experience/:id", adminHandler.UpdateExperience)
			admin.DELETE("/experience/:id", adminHandler.DeleteExperience)

			admin.GET("/tech-stack", adminHandler.ListTechStack)
			admin.POST("/tech-stack", adminHandler.CreateTechStackItem)
			admin.PUT("/tech-stack/:id", adminHandler.UpdateTechStackItem)
			admin.DELETE("/tech-stack/:id", adminHandler.DeleteTechStackItem)

			admin.GET("/contact-messages", adminHandler.ListContactMessages)
			admin.GET("/contact-messages/:id", adminHandler.GetContactMessage)
			admin.PUT("/contact-messages/:id/status", adminHandler.UpdateContactMessageStatus)
			admin.DELETE("/contact-messages/:id", adminHandler.DeleteContactMessage)
		}
	}

	return r
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shbudget-backend/internal/shared/middleware"
	"shbudget-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupMemberRoutes(api, c)
		setupBookRoutes(api, c)
		setupAssetRoutes(api, c)
	}

	return router
}

// Member routes carry no identity header: registration happens before any
// identity exists and profile reads are open by id.
func setupMemberRoutes(api *gin.RouterGroup, c *container.Container) {
	members := api.Group("/members")
	{
		members.POST("", c.MemberHandler.Register)
		members.GET("/:id", c.MemberHandler.GetByID)
		members.PUT("/:id", c.MemberHandler.UpdateProfile)
	}
}

func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	books.Use(middleware.MemberIdentity())
	{
		books.GET("/my", c.BookHandler.GetMyBook)
		books.POST("/join", c.BookHandler.Join)
		books.PUT("/:id", c.BookHandler.Update)
		books.POST("/:id/invite-code", c.BookHandler.RegenerateInviteCode)
		books.DELETE("/:id", c.BookHandler.Delete)
		books.GET("/:id/members", c.BookHandler.ListMembers)
		books.DELETE("/:id/members/:memberId", c.BookHandler.RemoveMember)
	}
}

func setupAssetRoutes(api *gin.RouterGroup, c *container.Container) {
	assets := api.Group("/assets")
	assets.Use(middleware.MemberIdentity())
	{
		assets.POST("", c.AssetHandler.Create)
		assets.GET("", c.AssetHandler.List)
		// Registered before /:id so "total" is not parsed as an asset id.
		assets.GET("/total", c.AssetHandler.TotalBalance)
		assets.GET("/:id", c.AssetHandler.Get)
		assets.PUT("/:id", c.AssetHandler.Update)
		assets.DELETE("/:id", c.AssetHandler.Delete)
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		status := http.StatusOK
		if health["status"] != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, health)
	}
}

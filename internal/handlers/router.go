package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yoftil7/task-api/internal/apierr"
	"github.com/yoftil7/task-api/internal/middleware"
	"github.com/yoftil7/task-api/internal/models"
)

// NewRouter wires the full HTTP surface. Authentication and role policy run
// as middleware, so handlers only ever see resolved callers.
func NewRouter(h *Handler, jwtKey string) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Logger(),
		gin.CustomRecovery(func(c *gin.Context, recovered any) {
			apierr.WriteInternal(c, recoveredError(recovered))
		}),
		middleware.RequestID(),
	)

	router.GET("/health", h.Health)
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	authed := router.Group("/", middleware.Auth(jwtKey))
	authed.GET("/me", h.Me)
	authed.POST("/tasks", h.CreateTask)
	authed.GET("/tasks", h.ListTasks)
	authed.GET("/tasks/:id", h.GetTask)
	authed.PUT("/tasks/:id", h.UpdateTask)
	authed.POST("/tasks/:id/complete", h.CompleteTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)

	admin := router.Group("/admin", middleware.Require(
		middleware.Authenticated(jwtKey),
		middleware.HasRole(models.RoleAdmin),
	))
	admin.DELETE("/tasks/:id", h.AdminDeleteTask)
	admin.GET("/dashboard", h.Dashboard)

	router.GET("/reports", middleware.Require(
		middleware.Authenticated(jwtKey),
		middleware.HasRole(models.RoleAdmin, models.RoleManager),
	), h.Reports)

	return router
}

func recoveredError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", recovered)
}

package routes

import (
	"github.com/cscportal/portal-go/internal/api/handlers"
	"github.com/cscportal/portal-go/internal/api/middleware"
	"github.com/cscportal/portal-go/internal/application"
	"github.com/cscportal/portal-go/internal/config/db"
	"github.com/cscportal/portal-go/internal/repository"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	repos := repository.NewRepositories(db.DB)
	services := application.New(repos)
	h := handlers.New(services)

	r.POST("/signup", h.User.Signup)
	r.POST("/user/login", h.User.UserLogin)
	r.POST("/csc/login", h.User.CSCLogin)
	r.POST("/technician/login", h.User.TechnicianLogin)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.POST("/logout", h.User.Logout)

		auth.GET("/user/dashboard", h.Dashboard.User)
		auth.GET("/csc/dashboard", h.Dashboard.CSC)
		auth.GET("/technician/dashboard", h.Dashboard.Technician)

		auth.POST("/user/forms", h.Submission.Create)
		auth.GET("/user/forms", h.Submission.ListOwn)

		forms := auth.Group("/forms")
		{
			forms.GET("/:id", h.Submission.Get)
			forms.PUT("/:id", h.Submission.Update)
			forms.POST("/:id/complete", h.Submission.Complete)
			forms.POST("/:id/comments", h.Submission.Comment)
			forms.GET("/:id/download", h.Submission.Download)
			forms.GET("/:id/document", h.Submission.Document)
		}

		auth.GET("/audit/logs", h.Audit.GetActions)
	}
}

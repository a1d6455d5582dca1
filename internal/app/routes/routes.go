package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadio/backend/internal/app/controllers"
	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/middleware"
)

// SetupRouter configures all application routes under the /api base path
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	programController *controllers.ProgramController,
	courseController *controllers.CourseController,
	messageController *controllers.MessageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "API is working"})
	})
	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	users := api.Group("/users")
	{
		users.POST("/signup", authController.Signup)
		users.POST("/login", authController.Login)
	}

	programs := api.Group("/programs")
	{
		programs.GET("", programController.GetAllPrograms)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
	}

	// --- Authenticated routes ---
	usersAuth := users.Group("")
	usersAuth.Use(authMiddleware.JWTAuth())
	{
		usersAuth.GET("/dashboard", userController.Dashboard)
		usersAuth.GET("/me", userController.GetMe)
		usersAuth.GET("/programs", userController.GetMyProgram)
		usersAuth.GET("/courses", userController.GetMyCourses)
		usersAuth.POST("/messages", userController.SendMessage)

		// Admin-only routes
		usersAdmin := usersAuth.Group("")
		usersAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			usersAdmin.GET("/students", userController.ListStudents)
			usersAdmin.GET("/admin/messages", messageController.ListMessages)
			usersAdmin.PUT("/admin/messages/:id/resolve", messageController.ResolveMessage)
		}
	}

	programsAuth := programs.Group("")
	programsAuth.Use(authMiddleware.JWTAuth())
	{
		programsAuth.POST("/subscribe/:id", programController.Subscribe)
		programsAuth.DELETE("/unsubscribe/:id", programController.Unsubscribe)

		programsAdmin := programsAuth.Group("")
		programsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			programsAdmin.POST("", programController.CreateProgram)
			programsAdmin.PUT("/:id", programController.UpdateProgram)
			programsAdmin.DELETE("/:id", programController.DeleteProgram)
		}
	}

	coursesAuth := courses.Group("")
	coursesAuth.Use(authMiddleware.JWTAuth())
	{
		coursesAuth.POST("/subscribe/:id", courseController.Subscribe)
		coursesAuth.DELETE("/unsubscribe/:id", courseController.Unsubscribe)

		coursesAdmin := coursesAuth.Group("")
		coursesAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}
	}
}

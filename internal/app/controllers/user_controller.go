package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadio/backend/internal/app/models"
	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/app/services"
	"github.com/acadio/backend/internal/middleware"
)

// UserController handles profile, dashboard and enrollment-view endpoints
type UserController struct {
	userService       *services.UserService
	enrollmentService *services.EnrollmentService
	messageService    *services.MessageService
}

// NewUserController creates a new UserController
func NewUserController(
	userService *services.UserService,
	enrollmentService *services.EnrollmentService,
	messageService *services.MessageService,
) *UserController {
	return &UserController{
		userService:       userService,
		enrollmentService: enrollmentService,
		messageService:    messageService,
	}
}

// Dashboard handles GET /users/dashboard
func (c *UserController) Dashboard(ctx *gin.Context) {
	username, _ := ctx.Get(middleware.ContextUsername)
	name, _ := username.(string)

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Welcome back, " + name})
}

// GetMe handles GET /users/me
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.userService.GetProfile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}

// GetMyProgram handles GET /users/programs. The response is a list holding
// the user's program, or an empty list when they have none.
func (c *UserController) GetMyProgram(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	program, err := c.enrollmentService.GetMyProgram(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	programs := []*models.Program{}
	if program != nil {
		programs = append(programs, program)
	}

	ctx.JSON(http.StatusOK, programs)
}

// GetMyCourses handles GET /users/courses
func (c *UserController) GetMyCourses(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	courses, err := c.enrollmentService.GetMyCourses(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// SendMessage handles POST /users/messages
func (c *UserController) SendMessage(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	message, err := c.messageService.SendMessage(ctx, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SendMessageResponse{
		Message: "Message sent",
		Data:    message,
	})
}

// ListStudents handles GET /users/students
func (c *UserController) ListStudents(ctx *gin.Context) {
	students, err := c.userService.ListStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

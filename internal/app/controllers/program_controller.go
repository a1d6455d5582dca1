package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/app/services"
	"github.com/acadio/backend/internal/middleware"
)

// ProgramController handles program catalog and enrollment endpoints
type ProgramController struct {
	programService    *services.ProgramService
	enrollmentService *services.EnrollmentService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService *services.ProgramService, enrollmentService *services.EnrollmentService) *ProgramController {
	return &ProgramController{
		programService:    programService,
		enrollmentService: enrollmentService,
	}
}

// GetAllPrograms handles GET /programs
func (c *ProgramController) GetAllPrograms(ctx *gin.Context) {
	programs, err := c.programService.GetAllPrograms(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, programs)
}

// CreateProgram handles POST /programs
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	program, err := c.programService.CreateProgram(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, program)
}

// UpdateProgram handles PUT /programs/:id
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "program")
	if !ok {
		return
	}

	var req dto.ProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err)))
		return
	}

	program, err := c.programService.UpdateProgram(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, program)
}

// DeleteProgram handles DELETE /programs/:id
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "program")
	if !ok {
		return
	}

	if err := c.programService.DeleteProgram(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Program deleted"})
}

// Subscribe handles POST /programs/subscribe/:id
func (c *ProgramController) Subscribe(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	programID, ok := parseIDParam(ctx, "program")
	if !ok {
		return
	}

	program, err := c.enrollmentService.SubscribeProgram(ctx, userID, programID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SubscribeProgramResponse{
		Message: "Subscribed to program",
		Program: *program,
	})
}

// Unsubscribe handles DELETE /programs/unsubscribe/:id
func (c *ProgramController) Unsubscribe(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	programID, ok := parseIDParam(ctx, "program")
	if !ok {
		return
	}

	if err := c.enrollmentService.UnsubscribeProgram(ctx, userID, programID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Unsubscribed from program"})
}

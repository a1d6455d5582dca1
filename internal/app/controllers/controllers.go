package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/middleware"
)

// parseIDParam reads the :id path segment as an int64. On failure it writes
// the 400 response itself and reports ok=false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+" ID"))
		return 0, false
	}
	return id, true
}

// currentUserID reads the authenticated user's id placed on the context by
// the JWT middleware. On failure it writes the 401 response itself.
func currentUserID(ctx *gin.Context) (int64, bool) {
	value, exists := ctx.Get(middleware.ContextUserID)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return 0, false
	}
	userID, ok := value.(int64)
	if !ok || userID <= 0 {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return 0, false
	}
	return userID, true
}

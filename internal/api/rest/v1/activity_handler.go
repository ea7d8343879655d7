package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/domain/activity"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// ActivityHandler defines the interface for reading the activity log
type ActivityHandler interface {
	List(ctx *gin.Context)
}

type activityHandler struct {
	activityService activity.Service
	logger          logger.Logger
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activityService activity.Service, logger logger.Logger) ActivityHandler {
	return &activityHandler{activityService: activityService, logger: logger}
}

// List handles the GET request listing recent activity of a baby or a user
// @Summary List activity
// @Tags Activity
// @Produce json
// @Param babyId query string false "Baby ID"
// @Param userId query string false "User ID"
// @Param limit query int false "Limit the number of results"
// @Success 200 {array} ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Router /activity [get]
func (handler *activityHandler) List(ctx *gin.Context) {
	query, err := parseListQuery(ctx, "")
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	entries, err := handler.activityService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	var listResponse = []ActivityResponse{}
	for _, entry := range entries {
		listResponse = append(listResponse, newActivityResponse(entry))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

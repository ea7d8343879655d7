package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/domain/livedata"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// LiveDataHandler defines the interface for the polled dashboard snapshot
type LiveDataHandler interface {
	Get(ctx *gin.Context)
}

type liveDataHandler struct {
	liveDataService livedata.Service
	logger          logger.Logger
}

// NewLiveDataHandler creates a new LiveDataHandler
func NewLiveDataHandler(liveDataService livedata.Service, logger logger.Logger) LiveDataHandler {
	return &liveDataHandler{liveDataService: liveDataService, logger: logger}
}

// Get handles the GET request for a baby's live data
// @Summary Retrieve live data
// @Description Returns the latest entries and today's summary for a baby, with "today" computed in tz.
// @Tags LiveData
// @Produce json
// @Param babyId query string true "Baby ID"
// @Param tz query string false "IANA time zone, defaults to UTC"
// @Success 200 {object} LiveDataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /live-data [get]
func (handler *liveDataHandler) Get(ctx *gin.Context) {
	babyID := ctx.Query(scopeBaby)
	if babyID == "" {
		respondBadRequest(ctx, "babyId is required")
		return
	}

	loc := time.UTC
	if tz := ctx.Query("tz"); tz != "" {
		var err error
		if loc, err = time.LoadLocation(tz); err != nil {
			respondBadRequest(ctx, "unknown time zone "+tz)
			return
		}
	}

	snapshot, err := handler.liveDataService.Get(ctx.Request.Context(), babyID, loc)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.Header("Cache-Control", "no-store")
	ctx.JSON(http.StatusOK, newLiveDataResponse(snapshot))
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// SettingsHandler defines the interface for handling user settings
type SettingsHandler interface {
	Get(ctx *gin.Context)
	Put(ctx *gin.Context)
}

type settingsHandler struct {
	settingsService family.SettingsService
	logger          logger.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService family.SettingsService, logger logger.Logger) SettingsHandler {
	return &settingsHandler{settingsService: settingsService, logger: logger}
}

// Get handles the GET request for a user's settings
// @Summary Retrieve user settings
// @Description Returns the stored settings, or the defaults when the user never saved any.
// @Tags Settings
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Router /settings/{userId} [get]
func (handler *settingsHandler) Get(ctx *gin.Context) {
	settings, err := handler.settingsService.Get(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, newSettingsResponse(settings))
}

// Put handles the PUT request creating or replacing a user's settings
// @Summary Upsert user settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param requestBody body SettingsRequest true "Settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Router /settings/{userId} [put]
func (handler *settingsHandler) Put(ctx *gin.Context) {
	var request SettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid settings data: "+err.Error())
		return
	}

	settings, err := handler.settingsService.Upsert(withActor(ctx), request.toDomain(ctx.Param("userId")))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, newSettingsResponse(settings))
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// ProfileHandler defines the interface for handling parent recovery profiles
type ProfileHandler interface {
	Get(ctx *gin.Context)
	Put(ctx *gin.Context)
}

type profileHandler struct {
	profileService parent.ProfileService
	logger         logger.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService parent.ProfileService, logger logger.Logger) ProfileHandler {
	return &profileHandler{profileService: profileService, logger: logger}
}

// Get handles the GET request for a parent's recovery profile
// @Summary Retrieve parent health profile
// @Tags ParentHealth
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /parent-health/{userId} [get]
func (handler *profileHandler) Get(ctx *gin.Context) {
	profile, err := handler.profileService.Get(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

// Put handles the PUT request creating or replacing a parent's recovery profile
// @Summary Upsert parent health profile
// @Tags ParentHealth
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param requestBody body ProfileRequest true "Profile"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Router /parent-health/{userId} [put]
func (handler *profileHandler) Put(ctx *gin.Context) {
	var request ProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, "invalid profile data: "+err.Error())
		return
	}

	profile, err := handler.profileService.Upsert(withActor(ctx), request.toDomain(ctx.Param("userId")))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, newProfileResponse(profile))
}

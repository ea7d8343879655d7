package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/app"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/pkg/logger"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine, services *app.Services, log logger.Logger) {
	v1 := r.Group(BasePath) // lookup in version file

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC()})
	})

	// Family Routes
	registerResource(v1, "/users", newResourceHandler[family.User, CreateUserRequest, UpdateUserRequest](
		"user", "", services.Users, newUserResponse, log))
	registerResource(v1, "/babies", newResourceHandler[family.Baby, CreateBabyRequest, UpdateBabyRequest](
		"baby", scopeUser, services.Babies, newBabyResponse, log))

	settingsHandler := NewSettingsHandler(services.Settings, log)
	v1.GET("/settings/:userId", settingsHandler.Get)
	v1.PUT("/settings/:userId", settingsHandler.Put)

	// Care Routes
	registerResource(v1, "/feedings", newResourceHandler[care.FeedingEntry, CreateFeedingRequest, UpdateFeedingRequest](
		"feeding", scopeBaby, services.Feedings, newFeedingResponse, log))
	registerResource(v1, "/sleep", newResourceHandler[care.SleepEntry, CreateSleepRequest, UpdateSleepRequest](
		"sleep", scopeBaby, services.Sleeps, newSleepResponse, log))
	registerResource(v1, "/diapers", newResourceHandler[care.DiaperEntry, CreateDiaperRequest, UpdateDiaperRequest](
		"diaper", scopeBaby, services.Diapers, newDiaperResponse, log))

	// Health Routes
	registerResource(v1, "/growth", newResourceHandler[health.GrowthEntry, CreateGrowthRequest, UpdateGrowthRequest](
		"growth", scopeBaby, services.Growth, newGrowthResponse, log))
	registerResource(v1, "/vaccines", newResourceHandler[health.VaccineEntry, CreateVaccineRequest, UpdateVaccineRequest](
		"vaccine", scopeBaby, services.Vaccines, newVaccineResponse, log))
	registerResource(v1, "/appointments", newResourceHandler[health.Appointment, CreateAppointmentRequest, UpdateAppointmentRequest](
		"appointment", scopeBaby, services.Appointments, newAppointmentResponse, log))
	registerResource(v1, "/milestones", newResourceHandler[health.DevelopmentalMilestone, CreateMilestoneRequest, UpdateMilestoneRequest](
		"milestone", scopeBaby, services.Milestones, newMilestoneResponse, log))
	registerResource(v1, "/providers", newResourceHandler[health.HealthcareProvider, CreateProviderRequest, UpdateProviderRequest](
		"provider", scopeUser, services.Providers, newProviderResponse, log))
	registerResource(v1, "/medications", newResourceHandler[health.Medication, CreateMedicationRequest, UpdateMedicationRequest](
		"medication", scopeBaby, services.Medications, newMedicationResponse, log))
	registerResource(v1, "/medication-entries", newResourceHandler[health.MedicationEntry, CreateMedicationEntryRequest, UpdateMedicationEntryRequest](
		"medication entry", scopeBaby, services.MedicationEntries, newMedicationEntryResponse, log))

	// Parent Health Routes
	registerResource(v1, "/parent-health/goals", newResourceHandler[parent.Goal, CreateGoalRequest, UpdateGoalRequest](
		"goal", scopeUser, services.Goals, newGoalResponse, log))

	profileHandler := NewProfileHandler(services.Profiles, log)
	v1.GET("/parent-health/:userId", profileHandler.Get)
	v1.PUT("/parent-health/:userId", profileHandler.Put)

	// Activity and Live Data Routes
	activityHandler := NewActivityHandler(services.Activity, log)
	v1.GET("/activity", activityHandler.List)

	liveDataHandler := NewLiveDataHandler(services.LiveData, log)
	v1.GET("/live-data", liveDataHandler.Get)
}

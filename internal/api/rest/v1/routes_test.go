//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pandamaske/biibii-sub002/internal/app"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/family"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/parent"
	"github.com/pandamaske/biibii-sub002/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
)

func newMockServices() *app.Services {
	return &app.Services{
		Users:             new(MockService[family.User]),
		Babies:            new(MockService[family.Baby]),
		Settings:          new(MockSettingsService),
		Feedings:          new(MockService[care.FeedingEntry]),
		Sleeps:            new(MockService[care.SleepEntry]),
		Diapers:           new(MockService[care.DiaperEntry]),
		Growth:            new(MockService[health.GrowthEntry]),
		Vaccines:          new(MockService[health.VaccineEntry]),
		Appointments:      new(MockService[health.Appointment]),
		Milestones:        new(MockService[health.DevelopmentalMilestone]),
		Providers:         new(MockService[health.HealthcareProvider]),
		Medications:       new(MockService[health.Medication]),
		MedicationEntries: new(MockService[health.MedicationEntry]),
		Goals:             new(MockService[parent.Goal]),
		Profiles:          new(MockProfileService),
		Activity:          new(MockActivityService),
		LiveData:          new(MockLiveDataService),
	}
}

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, newMockServices(), testutil.SetupTestLogger(t))

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	resources := []string{
		"/users", "/babies", "/feedings", "/sleep", "/diapers", "/growth", "/vaccines",
		"/appointments", "/milestones", "/providers", "/medications", "/medication-entries",
		"/parent-health/goals",
	}
	for _, resource := range resources {
		path := BasePath + resource
		assert.True(t, registered["POST "+path], "POST %s", path)
		assert.True(t, registered["GET "+path], "GET %s", path)
		assert.True(t, registered["GET "+path+"/:id"], "GET %s/:id", path)
		assert.True(t, registered["PATCH "+path+"/:id"], "PATCH %s/:id", path)
		assert.True(t, registered["DELETE "+path+"/:id"], "DELETE %s/:id", path)
	}

	for _, route := range []string{
		"GET " + BasePath + "/health",
		"GET " + BasePath + "/settings/:userId",
		"PUT " + BasePath + "/settings/:userId",
		"GET " + BasePath + "/parent-health/:userId",
		"PUT " + BasePath + "/parent-health/:userId",
		"GET " + BasePath + "/activity",
		"GET " + BasePath + "/live-data",
	} {
		assert.True(t, registered[route], route)
	}
}

func TestSetupRoutes_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, newMockServices(), testutil.SetupTestLogger(t))

	w := testutil.PerformRequest(t, r, http.MethodGet, BasePath+"/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Time.IsZero())
}

// goals are a static segment next to the :userId profile route
func TestSetupRoutes_GoalsAndProfileDoNotCollide(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	services := newMockServices()
	SetupRoutes(r, services, testutil.SetupTestLogger(t))

	w := testutil.PerformRequest(t, r, http.MethodGet, BasePath+"/parent-health/goals", nil)

	// list handler rejects the missing userId instead of the profile handler looking up "goals"
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userId is required")
	services.Profiles.(*MockProfileService).AssertNotCalled(t, "Get")
}

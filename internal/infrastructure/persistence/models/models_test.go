//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pandamaske/biibii-sub002/internal/domain/care"
	"github.com/pandamaske/biibii-sub002/internal/domain/health"
	"github.com/pandamaske/biibii-sub002/internal/domain/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedingModel_FromDomain(t *testing.T) {
	now := time.Now()
	amount := 90.0
	entry := &care.FeedingEntry{
		Base:      records.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		BabyID:    uuid.NewString(),
		Type:      care.FeedingBottle,
		StartTime: now.Add(-time.Hour),
		AmountMl:  &amount,
		Notes:     "fussy",
	}

	model := &FeedingModel{}
	model.FromDomain(entry)

	assert.Equal(t, entry.ID, model.ID)
	assert.Equal(t, entry.CreatedAt, model.CreatedAt)
	assert.Equal(t, entry.BabyID, model.BabyID)
	assert.Equal(t, entry.StartTime, model.StartTime)
	assert.Nil(t, model.EndTime)
	assert.Equal(t, &amount, model.AmountMl)

	// Round trip back to the domain
	assert.Equal(t, entry, model.ToDomain())
}

func TestMedicationModel_Doses(t *testing.T) {
	now := time.Now()
	med := &health.Medication{
		Base:      records.Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now},
		BabyID:    uuid.NewString(),
		Name:      "Vitamin D",
		Dosage:    "1",
		Unit:      health.UnitDrops,
		StartDate: now,
		Active:    true,
		Doses:     []health.MedicationDose{{TimeOfDay: "09:00"}, {TimeOfDay: "21:00", Amount: "2"}},
	}
	med.Prepare()

	model := &MedicationModel{}
	model.FromDomain(med)

	require.Len(t, model.Doses, 2)
	assert.Equal(t, med.ID, model.Doses[0].MedicationID)
	assert.Equal(t, "21:00", model.Doses[1].TimeOfDay)
	assert.Equal(t, "2", model.Doses[1].Amount)

	domain := model.ToDomain()
	assert.Equal(t, med.Doses, domain.Doses)
}

func TestMedicationModel_ToDomainWithoutDoses(t *testing.T) {
	model := &MedicationModel{BaseModel: BaseModel{ID: uuid.NewString()}, Name: "Ibuprofen"}

	domain := model.ToDomain()

	assert.NotNil(t, domain.Doses)
	assert.Empty(t, domain.Doses)
}

func TestAll_ContainsEveryTable(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range All() {
		tabler, ok := m.(interface{ TableName() string })
		require.True(t, ok)
		assert.False(t, seen[tabler.TableName()], tabler.TableName())
		seen[tabler.TableName()] = true
	}
	assert.Len(t, seen, 17)
}

package services

import (
	"context"
	"testing"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var testNow = time.Date(2026, time.January, 7, 10, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func seedDoctor(t *testing.T, st store.RecordStore, id string) {
	t.Helper()
	err := st.Append(context.Background(), store.Doctors, models.Doctor{
		ID: id, Name: "Dr Test", Email: id + "@example.com", HospitalID: "h1",
	})
	require.NoError(t, err)
}

func mondaySchedule(doctorID string) models.WeeklySchedule {
	return models.WeeklySchedule{
		ID:          "sched-" + doctorID,
		DoctorID:    doctorID,
		Monday:      true,
		StartTime:   "09:00",
		EndTime:     "12:00",
		MaxPatients: 3,
	}
}

func TestGenerateSlotsMondayOnly(t *testing.T) {
	slots := GenerateSlots(mondaySchedule("d1"), nil, testNow)

	require.Len(t, slots, 4)
	dates := []string{}
	for _, s := range slots {
		dates = append(dates, s.Date)
	}
	assert.Equal(t, []string{"2026-01-12", "2026-01-19", "2026-01-26", "2026-02-02"}, dates)
	for _, s := range slots {
		assert.Equal(t, "09:00", s.StartTime)
		assert.Equal(t, "12:00", s.EndTime)
		assert.True(t, s.IsAvailable)
		assert.Equal(t, 0, s.CurrentPatients)
		assert.Equal(t, 3, s.MaxPatients)
	}
}

func TestGenerateSlotsMatchesActualWeekday(t *testing.T) {
	schedule := mondaySchedule("d1")
	schedule.Monday = false
	schedule.Tuesday = true

	slots := GenerateSlots(schedule, nil, testNow)

	require.NotEmpty(t, slots)
	assert.Equal(t, "2026-01-13", slots[0].Date)
	for _, s := range slots {
		date, err := time.Parse("2006-01-02", s.Date)
		require.NoError(t, err)
		assert.Equal(t, time.Tuesday, date.Weekday())
	}
}

func TestGenerateSlotsIncludesTodayWhenEnabled(t *testing.T) {
	schedule := mondaySchedule("d1")
	schedule.Monday = false
	schedule.Wednesday = true

	slots := GenerateSlots(schedule, nil, testNow)

	require.NotEmpty(t, slots)
	assert.Equal(t, "2026-01-07", slots[0].Date)
}

func TestGenerateSlotsSkipsExisting(t *testing.T) {
	schedule := mondaySchedule("d1")
	existing := []models.TimeSlot{
		{ID: "old", DoctorID: "d1", Date: "2026-01-12", StartTime: "09:00"},
	}

	slots := GenerateSlots(schedule, existing, testNow)

	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.NotEqual(t, "2026-01-12", s.Date)
	}
}

func TestGenerateSlotsIsIdempotent(t *testing.T) {
	schedule := mondaySchedule("d1")
	first := GenerateSlots(schedule, nil, testNow)
	second := GenerateSlots(schedule, first, testNow)
	assert.Empty(t, second)
}

func TestGenerateSlotsOtherDoctorDoesNotBlock(t *testing.T) {
	schedule := mondaySchedule("d1")
	existing := []models.TimeSlot{
		{ID: "other", DoctorID: "d2", Date: "2026-01-12", StartTime: "09:00"},
	}
	slots := GenerateSlots(schedule, existing, testNow)
	require.Len(t, slots, 4)
}

func TestGenerateForSchedulePersistsSlots(t *testing.T) {
	st := store.NewMemStore()
	svc := SlotService{Store: st, Now: fixedNow}
	ctx := context.Background()

	created, err := svc.GenerateForSchedule(ctx, mondaySchedule("d1"))
	require.NoError(t, err)
	assert.Equal(t, 4, created)

	// second run finds everything in place
	created, err = svc.GenerateForSchedule(ctx, mondaySchedule("d1"))
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	var slots []models.TimeSlot
	require.NoError(t, st.GetAll(ctx, store.TimeSlots, &slots))
	assert.Len(t, slots, 4)
}

func TestAddSlotRequiresDoctor(t *testing.T) {
	st := store.NewMemStore()
	svc := SlotService{Store: st, Now: fixedNow}

	_, err := svc.AddSlot(context.Background(), models.TimeSlot{
		DoctorID: "ghost", Date: "2026-01-12", StartTime: "09:00", EndTime: "10:00", MaxPatients: 2,
	})
	assert.ErrorIs(t, err, ErrUnknownDoctor)
}

func TestAddSlotRejectsDuplicate(t *testing.T) {
	st := store.NewMemStore()
	seedDoctor(t, st, "d1")
	svc := SlotService{Store: st, Now: fixedNow}
	ctx := context.Background()

	_, err := svc.AddSlot(ctx, models.TimeSlot{
		DoctorID: "d1", Date: "2026-01-12", StartTime: "09:00", EndTime: "10:00", MaxPatients: 2,
	})
	require.NoError(t, err)

	_, err = svc.AddSlot(ctx, models.TimeSlot{
		DoctorID: "d1", Date: "2026-01-12", StartTime: "09:00", EndTime: "11:00", MaxPatients: 5,
	})
	assert.Error(t, err)
}

func TestAvailableForDoctorDerivesFromOccupancy(t *testing.T) {
	st := store.NewMemStore()
	ctx := context.Background()
	require.NoError(t, st.Append(ctx, store.TimeSlots, models.TimeSlot{
		ID: "full", DoctorID: "d1", Date: "2026-01-12", StartTime: "09:00",
		MaxPatients: 2, CurrentPatients: 2, IsAvailable: true, // stale flag
	}))
	require.NoError(t, st.Append(ctx, store.TimeSlots, models.TimeSlot{
		ID: "open", DoctorID: "d1", Date: "2026-01-12", StartTime: "10:00",
		MaxPatients: 2, CurrentPatients: 1, IsAvailable: false, // stale flag
	}))

	svc := SlotService{Store: st, Now: fixedNow}
	open, err := svc.AvailableForDoctor(ctx, "d1", "")
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "open", open[0].ID)
}

package services

import (
	"context"
	"sync"
	"testing"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPatient(t *testing.T, st store.RecordStore, id string) {
	t.Helper()
	err := st.Append(context.Background(), store.Patients, models.Patient{
		ID: id, Name: "Pat Test", Email: id + "@example.com",
	})
	require.NoError(t, err)
}

func seedSlot(t *testing.T, st store.RecordStore, slot models.TimeSlot) {
	t.Helper()
	require.NoError(t, st.Append(context.Background(), store.TimeSlots, slot))
}

func bookingFixture(t *testing.T, maxPatients int) (*AppointmentService, store.RecordStore) {
	t.Helper()
	st := store.NewMemStore()
	seedDoctor(t, st, "d1")
	seedPatient(t, st, "p1")
	seedSlot(t, st, models.TimeSlot{
		ID: "s1", DoctorID: "d1", Date: "2026-01-12", StartTime: "09:00", EndTime: "12:00",
		IsAvailable: true, MaxPatients: maxPatients,
	})
	return &AppointmentService{Store: st, Now: fixedNow}, st
}

func slotByID(t *testing.T, st store.RecordStore, id string) models.TimeSlot {
	t.Helper()
	var slots []models.TimeSlot
	require.NoError(t, st.GetAll(context.Background(), store.TimeSlots, &slots))
	for _, s := range slots {
		if s.ID == id {
			return s
		}
	}
	t.Fatalf("slot %s not found", id)
	return models.TimeSlot{}
}

func TestBookTakesSeatAndCopiesSlotFields(t *testing.T) {
	svc, st := bookingFixture(t, 2)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "knee pain")
	require.NoError(t, err)

	assert.Equal(t, "p1", appointment.PatientID)
	assert.Equal(t, "d1", appointment.DoctorID)
	assert.Equal(t, "s1", appointment.TimeSlotID)
	assert.Equal(t, "2026-01-12", appointment.Date)
	assert.Equal(t, "09:00", appointment.StartTime)
	assert.Equal(t, models.StatusScheduled, appointment.Status)

	slot := slotByID(t, st, "s1")
	assert.Equal(t, 1, slot.CurrentPatients)
	assert.True(t, slot.IsAvailable)
}

func TestBookLastSeatFlipsAvailability(t *testing.T) {
	svc, st := bookingFixture(t, 1)
	ctx := context.Background()

	_, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)

	slot := slotByID(t, st, "s1")
	assert.Equal(t, 1, slot.CurrentPatients)
	assert.False(t, slot.IsAvailable)
}

func TestBookFullSlotFails(t *testing.T) {
	svc, _ := bookingFixture(t, 1)
	ctx := context.Background()

	_, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)

	_, err = svc.Book(ctx, "p1", "d1", "s1", "")
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestBookUnknownPatientOrSlot(t *testing.T) {
	svc, _ := bookingFixture(t, 1)
	ctx := context.Background()

	_, err := svc.Book(ctx, "ghost", "d1", "s1", "")
	assert.ErrorIs(t, err, ErrUnknownPatient)

	_, err = svc.Book(ctx, "p1", "d1", "missing", "")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestBookSlotMustBelongToDoctor(t *testing.T) {
	svc, st := bookingFixture(t, 1)
	ctx := context.Background()
	seedDoctor(t, st, "d2")

	_, err := svc.Book(ctx, "p1", "d2", "s1", "")
	assert.ErrorIs(t, err, ErrSlotDoctorMismatch)

	// the failed booking took no seat
	slot := slotByID(t, st, "s1")
	assert.Equal(t, 0, slot.CurrentPatients)
}

// Two racing bookings for one remaining seat: exactly one wins.
func TestBookConcurrentLastSeat(t *testing.T) {
	st := store.NewMemStore()
	seedDoctor(t, st, "d1")
	seedPatient(t, st, "p1")
	seedPatient(t, st, "p2")
	seedSlot(t, st, models.TimeSlot{
		ID: "s1", DoctorID: "d1", Date: "2026-01-12", StartTime: "09:00",
		IsAvailable: true, MaxPatients: 1,
	})
	svc := &AppointmentService{Store: st, Now: fixedNow}
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, patient := range []string{"p1", "p2"} {
		wg.Add(1)
		go func(i int, patient string) {
			defer wg.Done()
			_, errs[i] = svc.Book(ctx, patient, "d1", "s1", "")
		}(i, patient)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotFull)
		}
	}
	assert.Equal(t, 1, succeeded)

	slot := slotByID(t, st, "s1")
	assert.Equal(t, 1, slot.CurrentPatients)

	var appointments []models.Appointment
	require.NoError(t, st.GetAll(ctx, store.Appointments, &appointments))
	assert.Len(t, appointments, 1)
}

func TestCancelReleasesSeat(t *testing.T) {
	svc, st := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, appointment.ID, "p1"))

	slot := slotByID(t, st, "s1")
	assert.Equal(t, 0, slot.CurrentPatients)
	assert.True(t, slot.IsAvailable)

	var appointments []models.Appointment
	require.NoError(t, st.GetAll(ctx, store.Appointments, &appointments))
	require.Len(t, appointments, 1)
	assert.Equal(t, models.StatusCancelled, appointments[0].Status)
}

func TestCancelOnlyByOwner(t *testing.T) {
	svc, _ := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)

	err = svc.Cancel(ctx, appointment.ID, "someone-else")
	assert.ErrorIs(t, err, ErrNotYourAppointment)
}

func TestCancelTwiceFails(t *testing.T) {
	svc, st := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, appointment.ID, "p1"))
	err = svc.Cancel(ctx, appointment.ID, "p1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// the seat was only released once
	slot := slotByID(t, st, "s1")
	assert.Equal(t, 0, slot.CurrentPatients)
}

func TestCancelSurvivesMissingSlot(t *testing.T) {
	svc, st := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)
	require.NoError(t, st.DeleteByID(ctx, store.TimeSlots, "s1"))

	require.NoError(t, svc.Cancel(ctx, appointment.ID, "p1"))

	var appointments []models.Appointment
	require.NoError(t, st.GetAll(ctx, store.Appointments, &appointments))
	require.Len(t, appointments, 1)
	assert.Equal(t, models.StatusCancelled, appointments[0].Status)
}

func TestSetStatusCompleted(t *testing.T) {
	svc, _ := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(ctx, appointment.ID, "d1", models.StatusCompleted))

	mine, err := svc.ForDoctor(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, models.StatusCompleted, mine[0].Status)
}

func TestSetStatusTerminalIsFinal(t *testing.T) {
	svc, _ := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(ctx, appointment.ID, "d1", models.StatusCompleted))

	err = svc.SetStatus(ctx, appointment.ID, "d1", models.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetStatusOwnershipAndValues(t *testing.T) {
	svc, _ := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)

	err = svc.SetStatus(ctx, appointment.ID, "other-doctor", models.StatusCompleted)
	assert.ErrorIs(t, err, ErrNotYourAppointment)

	err = svc.SetStatus(ctx, appointment.ID, "d1", models.StatusScheduled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetStatusCancelledReleasesSeat(t *testing.T) {
	svc, st := bookingFixture(t, 1)
	ctx := context.Background()

	appointment, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)
	require.NoError(t, svc.SetStatus(ctx, appointment.ID, "d1", models.StatusCancelled))

	slot := slotByID(t, st, "s1")
	assert.Equal(t, 0, slot.CurrentPatients)
	assert.True(t, slot.IsAvailable)
}

func TestForPatientFiltersOwnership(t *testing.T) {
	st := store.NewMemStore()
	seedDoctor(t, st, "d1")
	seedPatient(t, st, "p1")
	seedPatient(t, st, "p2")
	seedSlot(t, st, models.TimeSlot{
		ID: "s1", DoctorID: "d1", Date: "2026-01-12", StartTime: "09:00",
		IsAvailable: true, MaxPatients: 5,
	})
	svc := &AppointmentService{Store: st, Now: fixedNow}
	ctx := context.Background()

	_, err := svc.Book(ctx, "p1", "d1", "s1", "")
	require.NoError(t, err)
	_, err = svc.Book(ctx, "p2", "d1", "s1", "")
	require.NoError(t, err)

	mine, err := svc.ForPatient(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "p1", mine[0].PatientID)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

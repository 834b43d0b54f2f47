package services

import (
	"context"
	"errors"
	"log"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/google/uuid"
)

var (
	ErrSlotFull           = errors.New("time slot has no seats left")
	ErrUnknownSlot        = errors.New("time slot does not exist")
	ErrUnknownPatient     = errors.New("patient does not exist")
	ErrSlotDoctorMismatch = errors.New("time slot belongs to a different doctor")
	ErrInvalidTransition  = errors.New("appointment is already completed or cancelled")
	ErrNotYourAppointment = errors.New("appointment belongs to someone else")
)

// How many times a seat update is retried after losing a versioned write
// race before the whole operation fails.
const seatUpdateAttempts = 3

type AppointmentService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *AppointmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/*
* Validate that the patient, the doctor and the slot exist and that the
* slot really belongs to the chosen doctor
* Take a seat on the slot with a versioned write
* Create the appointment record
* Release the seat again if the appointment cannot be written
 */
func (s *AppointmentService) Book(ctx context.Context, patientID, doctorID, slotID, notes string) (models.Appointment, error) {
	if _, err := findPatient(ctx, s.Store, patientID); err != nil {
		return models.Appointment{}, err
	}
	if _, err := findDoctor(ctx, s.Store, doctorID); err != nil {
		return models.Appointment{}, err
	}
	if existing, err := s.findSlot(ctx, slotID); err != nil {
		return models.Appointment{}, err
	} else if existing.DoctorID != doctorID {
		return models.Appointment{}, ErrSlotDoctorMismatch
	}

	slot, err := s.takeSeat(ctx, slotID)
	if err != nil {
		return models.Appointment{}, err
	}

	appointment := models.Appointment{
		ID:         uuid.NewString(),
		PatientID:  patientID,
		DoctorID:   slot.DoctorID,
		TimeSlotID: slot.ID,
		Date:       slot.Date,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		Status:     models.StatusScheduled,
		Notes:      notes,
		CreatedAt:  s.now(),
	}
	if err := s.Store.Append(ctx, store.Appointments, appointment); err != nil {
		log.Println("Error writing appointment, releasing seat: ", err)
		if relErr := s.releaseSeat(ctx, slotID); relErr != nil {
			log.Println("Error releasing seat after failed booking: ", relErr)
		}
		return models.Appointment{}, err
	}

	Notify(store.Appointments, "created", appointment.ID)
	Notify(store.TimeSlots, "updated", slot.ID)
	return appointment, nil
}

/*
* Only the owning patient may cancel, and only while scheduled
* Mark the appointment cancelled with a versioned write
* Give the seat back to the slot
 */
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID, callerID string) error {
	appointment, err := s.findAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.PatientID != callerID {
		return ErrNotYourAppointment
	}
	if err := s.transition(ctx, appointment, models.StatusCancelled); err != nil {
		return err
	}
	// a vanished slot holds no seat to give back; the cancel still lands
	if err := s.releaseSeat(ctx, appointment.TimeSlotID); err != nil && err != ErrUnknownSlot {
		log.Println("Error releasing seat on cancel: ", err)
		return err
	}
	Notify(store.Appointments, "updated", appointment.ID)
	Notify(store.TimeSlots, "updated", appointment.TimeSlotID)
	return nil
}

/*
* Doctors mark their own appointments completed or cancelled
* Completed and cancelled are terminal, a second transition fails
* A doctor-side cancellation also frees the seat
 */
func (s *AppointmentService) SetStatus(ctx context.Context, appointmentID, doctorID, status string) error {
	if status != models.StatusCompleted && status != models.StatusCancelled {
		return ErrInvalidTransition
	}
	appointment, err := s.findAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.DoctorID != doctorID {
		return ErrNotYourAppointment
	}
	if err := s.transition(ctx, appointment, status); err != nil {
		return err
	}
	if status == models.StatusCancelled {
		if err := s.releaseSeat(ctx, appointment.TimeSlotID); err != nil && err != ErrUnknownSlot {
			log.Println("Error releasing seat on doctor cancel: ", err)
			return err
		}
		Notify(store.TimeSlots, "updated", appointment.TimeSlotID)
	}
	Notify(store.Appointments, "updated", appointment.ID)
	return nil
}

func (s *AppointmentService) ForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.filter(ctx, func(a models.Appointment) bool { return a.PatientID == patientID })
}

func (s *AppointmentService) ForDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return s.filter(ctx, func(a models.Appointment) bool { return a.DoctorID == doctorID })
}

func (s *AppointmentService) All(ctx context.Context) ([]models.Appointment, error) {
	return s.filter(ctx, func(models.Appointment) bool { return true })
}

func (s *AppointmentService) filter(ctx context.Context, keep func(models.Appointment) bool) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.Store.GetAll(ctx, store.Appointments, &appointments); err != nil {
		return nil, err
	}
	matched := []models.Appointment{}
	for _, appointment := range appointments {
		if keep(appointment) {
			matched = append(matched, appointment)
		}
	}
	return matched, nil
}

func (s *AppointmentService) findAppointment(ctx context.Context, id string) (models.Appointment, error) {
	var appointments []models.Appointment
	if err := s.Store.GetAll(ctx, store.Appointments, &appointments); err != nil {
		return models.Appointment{}, err
	}
	for _, appointment := range appointments {
		if appointment.ID == id {
			return appointment, nil
		}
	}
	return models.Appointment{}, store.ErrNotFound
}

// transition rewrites the appointment status under its version. A lost race
// means somebody else already moved the appointment, so reload and re-check
// rather than overwrite.
func (s *AppointmentService) transition(ctx context.Context, appointment models.Appointment, status string) error {
	for attempt := 0; attempt < seatUpdateAttempts; attempt++ {
		if !appointment.CanTransition(status) {
			return ErrInvalidTransition
		}
		updated := appointment
		updated.Status = status
		updated.Version = appointment.Version + 1
		err := s.Store.UpdateVersioned(ctx, store.Appointments, appointment.ID, appointment.Version, updated)
		if err == nil {
			return nil
		}
		if err != store.ErrVersionConflict {
			return err
		}
		appointment, err = s.findAppointment(ctx, appointment.ID)
		if err != nil {
			return err
		}
	}
	return store.ErrVersionConflict
}

/*
* Claim one seat on the slot
* The versioned write loses if another booking got there first, in which
* case the slot is reloaded and the capacity check runs again
 */
func (s *AppointmentService) takeSeat(ctx context.Context, slotID string) (models.TimeSlot, error) {
	for attempt := 0; attempt < seatUpdateAttempts; attempt++ {
		slot, err := s.findSlot(ctx, slotID)
		if err != nil {
			return models.TimeSlot{}, err
		}
		if !slot.HasCapacity() {
			return models.TimeSlot{}, ErrSlotFull
		}
		updated := slot
		updated.CurrentPatients = slot.CurrentPatients + 1
		updated.Version = slot.Version + 1
		updated.SyncAvailability()
		err = s.Store.UpdateVersioned(ctx, store.TimeSlots, slot.ID, slot.Version, updated)
		if err == nil {
			return updated, nil
		}
		if err != store.ErrVersionConflict {
			return models.TimeSlot{}, err
		}
	}
	return models.TimeSlot{}, store.ErrVersionConflict
}

func (s *AppointmentService) releaseSeat(ctx context.Context, slotID string) error {
	for attempt := 0; attempt < seatUpdateAttempts; attempt++ {
		slot, err := s.findSlot(ctx, slotID)
		if err != nil {
			return err
		}
		updated := slot
		if updated.CurrentPatients > 0 {
			updated.CurrentPatients--
		}
		updated.Version = slot.Version + 1
		updated.SyncAvailability()
		err = s.Store.UpdateVersioned(ctx, store.TimeSlots, slot.ID, slot.Version, updated)
		if err == nil {
			return nil
		}
		if err != store.ErrVersionConflict {
			return err
		}
	}
	return store.ErrVersionConflict
}

func (s *AppointmentService) findSlot(ctx context.Context, id string) (models.TimeSlot, error) {
	var slots []models.TimeSlot
	if err := s.Store.GetAll(ctx, store.TimeSlots, &slots); err != nil {
		return models.TimeSlot{}, err
	}
	for _, slot := range slots {
		if slot.ID == id {
			return slot, nil
		}
	}
	return models.TimeSlot{}, ErrUnknownSlot
}

func findPatient(ctx context.Context, st store.RecordStore, patientID string) (models.Patient, error) {
	var patients []models.Patient
	if err := st.GetAll(ctx, store.Patients, &patients); err != nil {
		return models.Patient{}, err
	}
	for _, patient := range patients {
		if patient.ID == patientID {
			return patient, nil
		}
	}
	return models.Patient{}, ErrUnknownPatient
}

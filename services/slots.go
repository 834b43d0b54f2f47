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

// Slots are generated for the next 4 weeks of candidate dates, today
// included.
const slotHorizonDays = 4 * 7

const slotDateLayout = "2006-01-02"

var ErrUnknownDoctor = errors.New("doctor does not exist")

/*
* Expand a weekly schedule into concrete dated slots
* Walk the 28 candidate dates starting today
* Keep dates whose weekday flag is enabled in the schedule
* Skip any (doctor,date,startTime) triple that already has a slot
 */
func GenerateSlots(schedule models.WeeklySchedule, existing []models.TimeSlot, now time.Time) []models.TimeSlot {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var created []models.TimeSlot
	for day := 0; day < slotHorizonDays; day++ {
		date := today.AddDate(0, 0, day)
		if !schedule.EnabledOn(date.Weekday()) {
			continue
		}
		dateStr := date.Format(slotDateLayout)
		if slotExists(existing, schedule.DoctorID, dateStr, schedule.StartTime) {
			continue
		}
		created = append(created, models.TimeSlot{
			ID:              uuid.NewString(),
			DoctorID:        schedule.DoctorID,
			Date:            dateStr,
			StartTime:       schedule.StartTime,
			EndTime:         schedule.EndTime,
			IsAvailable:     true,
			MaxPatients:     schedule.MaxPatients,
			CurrentPatients: 0,
			CreatedAt:       now,
		})
	}
	return created
}

// Linear existence scan; the slot collection carries no index.
func slotExists(slots []models.TimeSlot, doctorID, date, startTime string) bool {
	for _, s := range slots {
		if s.DoctorID == doctorID && s.Date == date && s.StartTime == startTime {
			return true
		}
	}
	return false
}

type SlotService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *SlotService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/*
* Load all existing slots
* Generate the missing ones for the schedule
* Append each new slot and announce it
 */
func (s *SlotService) GenerateForSchedule(ctx context.Context, schedule models.WeeklySchedule) (int, error) {
	var existing []models.TimeSlot
	if err := s.Store.GetAll(ctx, store.TimeSlots, &existing); err != nil {
		log.Println("Error loading time slots: ", err)
		return 0, err
	}

	created := GenerateSlots(schedule, existing, s.now())
	for _, slot := range created {
		if err := s.Store.Append(ctx, store.TimeSlots, slot); err != nil {
			log.Println("Error appending generated slot: ", err)
			return 0, err
		}
		Notify(store.TimeSlots, "created", slot.ID)
	}
	return len(created), nil
}

// AddSlot creates a single ad-hoc slot outside the weekly template.
func (s *SlotService) AddSlot(ctx context.Context, slot models.TimeSlot) (models.TimeSlot, error) {
	if _, err := findDoctor(ctx, s.Store, slot.DoctorID); err != nil {
		return models.TimeSlot{}, err
	}

	var existing []models.TimeSlot
	if err := s.Store.GetAll(ctx, store.TimeSlots, &existing); err != nil {
		return models.TimeSlot{}, err
	}
	if slotExists(existing, slot.DoctorID, slot.Date, slot.StartTime) {
		return models.TimeSlot{}, errors.New("a slot already exists for this doctor, date and start time")
	}

	slot.ID = uuid.NewString()
	slot.CurrentPatients = 0
	slot.IsAvailable = true
	slot.Version = 0
	slot.CreatedAt = s.now()
	if err := s.Store.Append(ctx, store.TimeSlots, slot); err != nil {
		return models.TimeSlot{}, err
	}
	Notify(store.TimeSlots, "created", slot.ID)
	return slot, nil
}

func (s *SlotService) SlotsForDoctor(ctx context.Context, doctorID string) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	if err := s.Store.GetAll(ctx, store.TimeSlots, &slots); err != nil {
		return nil, err
	}
	mine := []models.TimeSlot{}
	for _, slot := range slots {
		if slot.DoctorID == doctorID {
			mine = append(mine, slot)
		}
	}
	return mine, nil
}

/*
* Bookable slots for a doctor as the patient search sees them
* Availability is derived from occupancy, not the stored flag
* Optional date filter in the slot's own date format
 */
func (s *SlotService) AvailableForDoctor(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	slots, err := s.SlotsForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	open := []models.TimeSlot{}
	for _, slot := range slots {
		if !slot.HasCapacity() {
			continue
		}
		if date != "" && slot.Date != date {
			continue
		}
		open = append(open, slot)
	}
	return open, nil
}

func findDoctor(ctx context.Context, st store.RecordStore, doctorID string) (models.Doctor, error) {
	var doctors []models.Doctor
	if err := st.GetAll(ctx, store.Doctors, &doctors); err != nil {
		return models.Doctor{}, err
	}
	for _, doctor := range doctors {
		if doctor.ID == doctorID {
			return doctor, nil
		}
	}
	return models.Doctor{}, ErrUnknownDoctor
}

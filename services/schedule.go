package services

import (
	"context"
	"log"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/google/uuid"
)

type ScheduleService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *ScheduleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/*
* One weekly schedule per doctor, saving again replaces it
* Future empty slots that no longer match the template are pruned
* The slot horizon is regenerated from the new template
 */
func (s *ScheduleService) Upsert(ctx context.Context, schedule models.WeeklySchedule) (models.WeeklySchedule, int, error) {
	if _, err := findDoctor(ctx, s.Store, schedule.DoctorID); err != nil {
		return models.WeeklySchedule{}, 0, err
	}

	var schedules []models.WeeklySchedule
	if err := s.Store.GetAll(ctx, store.WeeklySchedules, &schedules); err != nil {
		return models.WeeklySchedule{}, 0, err
	}

	existing := ""
	for _, sc := range schedules {
		if sc.DoctorID == schedule.DoctorID {
			existing = sc.ID
			break
		}
	}
	if existing == "" {
		schedule.ID = uuid.NewString()
		schedule.CreatedAt = s.now()
		if err := s.Store.Append(ctx, store.WeeklySchedules, schedule); err != nil {
			return models.WeeklySchedule{}, 0, err
		}
	} else {
		schedule.ID = existing
		schedule.CreatedAt = s.now()
		if err := s.Store.UpdateByID(ctx, store.WeeklySchedules, existing, schedule); err != nil {
			return models.WeeklySchedule{}, 0, err
		}
	}
	Notify(store.WeeklySchedules, "updated", schedule.ID)

	if err := s.pruneStaleSlots(ctx, schedule); err != nil {
		log.Println("Error pruning stale slots: ", err)
		return models.WeeklySchedule{}, 0, err
	}

	slots := SlotService{Store: s.Store, Now: s.Now}
	created, err := slots.GenerateForSchedule(ctx, schedule)
	if err != nil {
		return models.WeeklySchedule{}, 0, err
	}
	return schedule, created, nil
}

func (s *ScheduleService) ForDoctor(ctx context.Context, doctorID string) (models.WeeklySchedule, error) {
	var schedules []models.WeeklySchedule
	if err := s.Store.GetAll(ctx, store.WeeklySchedules, &schedules); err != nil {
		return models.WeeklySchedule{}, err
	}
	for _, schedule := range schedules {
		if schedule.DoctorID == doctorID {
			return schedule, nil
		}
	}
	return models.WeeklySchedule{}, store.ErrNotFound
}

/*
* Drop this doctor's future slots that the new template would not produce
* Slots with bookings are kept even when the template changed, their
* appointments still reference them
* The delete is conditional on the version seen at the capacity check, so
* a booking that lands in between keeps its slot instead of being orphaned
 */
func (s *ScheduleService) pruneStaleSlots(ctx context.Context, schedule models.WeeklySchedule) error {
	var slots []models.TimeSlot
	if err := s.Store.GetAll(ctx, store.TimeSlots, &slots); err != nil {
		return err
	}
	today := s.now().Format(slotDateLayout)
	for _, slot := range slots {
		if slot.DoctorID != schedule.DoctorID || slot.Date < today {
			continue
		}
		if slot.CurrentPatients > 0 {
			continue
		}
		if s.matchesTemplate(slot, schedule) {
			continue
		}
		err := s.Store.DeleteVersioned(ctx, store.TimeSlots, slot.ID, slot.Version)
		if err == store.ErrVersionConflict || err == store.ErrNotFound {
			// somebody touched the slot since we read it; leave it alone
			continue
		}
		if err != nil {
			return err
		}
		Notify(store.TimeSlots, "deleted", slot.ID)
	}
	return nil
}

func (s *ScheduleService) matchesTemplate(slot models.TimeSlot, schedule models.WeeklySchedule) bool {
	date, err := time.Parse(slotDateLayout, slot.Date)
	if err != nil {
		return false
	}
	return schedule.EnabledOn(date.Weekday()) &&
		slot.StartTime == schedule.StartTime &&
		slot.EndTime == schedule.EndTime
}

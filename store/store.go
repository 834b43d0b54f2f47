package store

import (
	"context"
	"errors"
)

// Collection keys. One collection per entity type, each an ordered list of
// records carrying a string "id" field.
const (
	Hospitals       = "hospitals"
	Doctors         = "doctors"
	Patients        = "patients"
	TimeSlots       = "timeSlots"
	WeeklySchedules = "weeklySchedules"
	Appointments    = "appointments"
	Users           = "users"
	Specializations = "specializations"
)

// Keys lists every known collection, in the order reset clears them.
func Keys() []string {
	return []string{
		Hospitals,
		Doctors,
		Patients,
		TimeSlots,
		WeeklySchedules,
		Appointments,
		Users,
		Specializations,
	}
}

var (
	ErrNotFound        = errors.New("record not found")
	ErrVersionConflict = errors.New("record was modified by another writer")
)

// RecordStore persists named collections of id-keyed records. UpdateByID is
// a whole-record replace (last write wins); UpdateVersioned and
// DeleteVersioned additionally require the stored record's version field to
// match expected, and return ErrVersionConflict otherwise. Callers bump the
// version on the record they write.
type RecordStore interface {
	GetAll(ctx context.Context, key string, out interface{}) error
	Append(ctx context.Context, key string, record interface{}) error
	ReplaceAll(ctx context.Context, key string, records []interface{}) error
	UpdateByID(ctx context.Context, key, id string, record interface{}) error
	UpdateVersioned(ctx context.Context, key, id string, expected int64, record interface{}) error
	DeleteByID(ctx context.Context, key, id string) error
	DeleteVersioned(ctx context.Context, key, id string, expected int64) error
	Clear(ctx context.Context, key string) error
}

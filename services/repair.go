package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"
)

// RepairReport summarizes one manually triggered reconciliation run.
type RepairReport struct {
	RequestedBy    string   `json:"requestedBy"`
	TargetDoctorID string   `json:"targetDoctorId"`
	SlotsMoved     int      `json:"slotsMoved"`
	Appointments   int      `json:"appointmentsMoved"`
	Log            []string `json:"log"`
}

type RepairService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *RepairService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/*
* Time slots and appointments can carry a doctor id that resolves to no
* doctor record (the doctor was deleted, or data was imported badly)
* This run moves every such orphan onto the chosen doctor and keeps an
* audit trail of what moved and who asked
* References are validated at write time elsewhere, so this is a recovery
* path for data that predates those checks
 */
func (s *RepairService) ReassignOrphans(ctx context.Context, targetDoctorID, requestedBy string) (RepairReport, error) {
	report := RepairReport{
		RequestedBy:    requestedBy,
		TargetDoctorID: targetDoctorID,
		Log:            []string{},
	}

	if _, err := findDoctor(ctx, s.Store, targetDoctorID); err != nil {
		return report, err
	}

	var doctors []models.Doctor
	if err := s.Store.GetAll(ctx, store.Doctors, &doctors); err != nil {
		return report, err
	}
	known := make(map[string]bool, len(doctors))
	for _, doctor := range doctors {
		known[doctor.ID] = true
	}

	var slots []models.TimeSlot
	if err := s.Store.GetAll(ctx, store.TimeSlots, &slots); err != nil {
		return report, err
	}
	for _, slot := range slots {
		if known[slot.DoctorID] {
			continue
		}
		orphanedFrom := slot.DoctorID
		slot.DoctorID = targetDoctorID
		slot.Version++
		if err := s.Store.UpdateByID(ctx, store.TimeSlots, slot.ID, slot); err != nil {
			return report, err
		}
		report.SlotsMoved++
		report.Log = append(report.Log, fmt.Sprintf("slot %s: doctor %q -> %q", slot.ID, orphanedFrom, targetDoctorID))
		Notify(store.TimeSlots, "updated", slot.ID)
	}

	var appointments []models.Appointment
	if err := s.Store.GetAll(ctx, store.Appointments, &appointments); err != nil {
		return report, err
	}
	for _, appointment := range appointments {
		if known[appointment.DoctorID] {
			continue
		}
		orphanedFrom := appointment.DoctorID
		appointment.DoctorID = targetDoctorID
		appointment.Version++
		if err := s.Store.UpdateByID(ctx, store.Appointments, appointment.ID, appointment); err != nil {
			return report, err
		}
		report.Appointments++
		report.Log = append(report.Log, fmt.Sprintf("appointment %s: doctor %q -> %q", appointment.ID, orphanedFrom, targetDoctorID))
		Notify(store.Appointments, "updated", appointment.ID)
	}

	log.Printf("Repair by %s: %d slots and %d appointments reassigned to %s",
		requestedBy, report.SlotsMoved, report.Appointments, targetDoctorID)
	return report, nil
}

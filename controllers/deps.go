package controllers

import (
	"errors"
	"time"

	"MedNetwork/services"
	"MedNetwork/store"

	"github.com/gin-gonic/gin"
)

// Service instances shared by all handlers, wired once at startup with the
// record store the process runs on.
var (
	authService           *services.AuthService
	hospitalService       *services.HospitalService
	doctorService         *services.DoctorService
	patientService        *services.PatientService
	scheduleService       *services.ScheduleService
	slotService           *services.SlotService
	appointmentService    *services.AppointmentService
	specializationService *services.SpecializationService
	seedService           *services.SeedService
	repairService         *services.RepairService
)

func Init(st store.RecordStore) {
	now := time.Now
	authService = &services.AuthService{Store: st, Now: now}
	hospitalService = &services.HospitalService{Store: st, Now: now}
	doctorService = &services.DoctorService{Store: st, Now: now}
	patientService = &services.PatientService{Store: st, Now: now}
	scheduleService = &services.ScheduleService{Store: st, Now: now}
	slotService = &services.SlotService{Store: st, Now: now}
	appointmentService = &services.AppointmentService{Store: st, Now: now}
	specializationService = &services.SpecializationService{Store: st}
	seedService = &services.SeedService{Store: st, Now: now}
	repairService = &services.RepairService{Store: st, Now: now}
}

// callerID is the JWT subject the auth middleware stored on the context.
func callerID(c *gin.Context) (string, error) {
	code := c.GetString("code")
	if code == "" {
		return "", errors.New("unable to get caller id from context")
	}
	return code, nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/google/uuid"
)

var ErrUnknownHospital = errors.New("hospital does not exist")

type DoctorService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *DoctorService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/*
* The doctor must belong to an existing hospital
* The hospital name is denormalized onto the record for search
* A doctor login account is provisioned with the default password
 */
func (s *DoctorService) Create(ctx context.Context, doctor models.Doctor) (models.Doctor, error) {
	hospitals := HospitalService{Store: s.Store, Now: s.Now}
	hospital, err := hospitals.FindByID(ctx, doctor.HospitalID)
	if err != nil {
		if err == store.ErrNotFound {
			return models.Doctor{}, ErrUnknownHospital
		}
		return models.Doctor{}, err
	}

	taken, err := emailTaken(ctx, s.Store, doctor.Email)
	if err != nil {
		return models.Doctor{}, err
	}
	if taken {
		return models.Doctor{}, ErrEmailTaken
	}

	doctor.ID = uuid.NewString()
	doctor.HospitalName = hospital.Name
	doctor.CreatedAt = s.now()
	if err := s.Store.Append(ctx, store.Doctors, doctor); err != nil {
		return models.Doctor{}, err
	}

	hashed, err := HashPassword(DefaultPassword)
	if err != nil {
		return models.Doctor{}, err
	}
	account := models.User{
		ID:           doctor.ID,
		Email:        doctor.Email,
		Phone:        doctor.Phone,
		Name:         doctor.Name,
		Role:         models.RoleDoctor,
		HospitalID:   doctor.HospitalID,
		Password:     hashed,
		IsFirstLogin: true,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.Store.Append(ctx, store.Users, account); err != nil {
		return models.Doctor{}, err
	}

	Notify(store.Doctors, "created", doctor.ID)
	return doctor, nil
}

func (s *DoctorService) Update(ctx context.Context, doctor models.Doctor) error {
	existing, err := findDoctor(ctx, s.Store, doctor.ID)
	if err != nil {
		return err
	}
	doctor.HospitalName = existing.HospitalName
	doctor.CreatedAt = existing.CreatedAt
	if err := s.Store.UpdateByID(ctx, store.Doctors, doctor.ID, doctor); err != nil {
		return err
	}
	Notify(store.Doctors, "updated", doctor.ID)
	return nil
}

func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.Store.GetAll(ctx, store.Doctors, &doctors); err != nil {
		return nil, err
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	return doctors, nil
}

func (s *DoctorService) ForHospital(ctx context.Context, hospitalID string) ([]models.Doctor, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := []models.Doctor{}
	for _, doctor := range doctors {
		if doctor.HospitalID == hospitalID {
			mine = append(mine, doctor)
		}
	}
	return mine, nil
}

/*
* Patient-facing search, all filters are optional and combined with AND
* Name and hospital match on a case-insensitive substring
* Specialization matches exactly
 */
func (s *DoctorService) Search(ctx context.Context, filters models.SearchFilters) ([]models.Doctor, error) {
	doctors, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := []models.Doctor{}
	for _, doctor := range doctors {
		if filters.Specialization != "" && doctor.Specialization != filters.Specialization {
			continue
		}
		if filters.DoctorName != "" && !containsFold(doctor.Name, filters.DoctorName) {
			continue
		}
		if filters.HospitalName != "" && !containsFold(doctor.HospitalName, filters.HospitalName) {
			continue
		}
		matched = append(matched, doctor)
	}
	return matched, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

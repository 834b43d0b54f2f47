package services

import (
	"context"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/google/uuid"
)

type HospitalService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *HospitalService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/*
* Create the hospital record
* Provision a hospital_admin account for it with the default password
* The account owner resets the password on first login
 */
func (s *HospitalService) Create(ctx context.Context, hospital models.Hospital) (models.Hospital, error) {
	taken, err := emailTaken(ctx, s.Store, hospital.Email)
	if err != nil {
		return models.Hospital{}, err
	}
	if taken {
		return models.Hospital{}, ErrEmailTaken
	}

	hospital.ID = uuid.NewString()
	hospital.CreatedAt = s.now()
	if err := s.Store.Append(ctx, store.Hospitals, hospital); err != nil {
		return models.Hospital{}, err
	}

	hashed, err := HashPassword(DefaultPassword)
	if err != nil {
		return models.Hospital{}, err
	}
	account := models.User{
		ID:           uuid.NewString(),
		Email:        hospital.Email,
		Phone:        hospital.Phone,
		Name:         hospital.Name,
		Role:         models.RoleHospitalAdmin,
		HospitalID:   hospital.ID,
		Password:     hashed,
		IsFirstLogin: true,
		IsActive:     true,
		CreatedAt:    s.now(),
	}
	if err := s.Store.Append(ctx, store.Users, account); err != nil {
		return models.Hospital{}, err
	}

	Notify(store.Hospitals, "created", hospital.ID)
	return hospital, nil
}

func (s *HospitalService) Update(ctx context.Context, hospital models.Hospital) error {
	existing, err := s.FindByID(ctx, hospital.ID)
	if err != nil {
		return err
	}
	hospital.CreatedAt = existing.CreatedAt
	if err := s.Store.UpdateByID(ctx, store.Hospitals, hospital.ID, hospital); err != nil {
		return err
	}
	Notify(store.Hospitals, "updated", hospital.ID)
	return nil
}

func (s *HospitalService) List(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	if err := s.Store.GetAll(ctx, store.Hospitals, &hospitals); err != nil {
		return nil, err
	}
	if hospitals == nil {
		hospitals = []models.Hospital{}
	}
	return hospitals, nil
}

func (s *HospitalService) FindByID(ctx context.Context, id string) (models.Hospital, error) {
	var hospitals []models.Hospital
	if err := s.Store.GetAll(ctx, store.Hospitals, &hospitals); err != nil {
		return models.Hospital{}, err
	}
	for _, hospital := range hospitals {
		if hospital.ID == id {
			return hospital, nil
		}
	}
	return models.Hospital{}, store.ErrNotFound
}

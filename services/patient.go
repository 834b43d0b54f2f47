package services

import (
	"context"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/google/uuid"
)

type PatientService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *PatientService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SignupInput carries the self-registration form. Patients pick their own
// password, unlike provisioned staff accounts.
type SignupInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Age         int    `json:"age"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
}

/*
* Self signup creates the patient record and its login account together
* Both share one id so a session maps straight to its patient
 */
func (s *PatientService) Register(ctx context.Context, input SignupInput) (models.Patient, error) {
	taken, err := emailTaken(ctx, s.Store, input.Email)
	if err != nil {
		return models.Patient{}, err
	}
	if taken {
		return models.Patient{}, ErrEmailTaken
	}

	patient := models.Patient{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Age:         input.Age,
		Address:     input.Address,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		CreatedAt:   s.now(),
	}
	if err := s.Store.Append(ctx, store.Patients, patient); err != nil {
		return models.Patient{}, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return models.Patient{}, err
	}
	account := models.User{
		ID:        patient.ID,
		Email:     patient.Email,
		Phone:     patient.Phone,
		Name:      patient.Name,
		Role:      models.RolePatient,
		Password:  hashed,
		IsActive:  true,
		CreatedAt: s.now(),
	}
	if err := s.Store.Append(ctx, store.Users, account); err != nil {
		return models.Patient{}, err
	}

	Notify(store.Patients, "created", patient.ID)
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, patient models.Patient) error {
	existing, err := findPatient(ctx, s.Store, patient.ID)
	if err != nil {
		return err
	}
	patient.Email = existing.Email
	patient.CreatedAt = existing.CreatedAt
	if err := s.Store.UpdateByID(ctx, store.Patients, patient.ID, patient); err != nil {
		return err
	}
	Notify(store.Patients, "updated", patient.ID)
	return nil
}

func (s *PatientService) List(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	if err := s.Store.GetAll(ctx, store.Patients, &patients); err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []models.Patient{}
	}
	return patients, nil
}

func (s *PatientService) FindByID(ctx context.Context, id string) (models.Patient, error) {
	return findPatient(ctx, s.Store, id)
}

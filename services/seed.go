package services

import (
	"context"
	"log"
	"time"

	"MedNetwork/models"
	"MedNetwork/store"

	"github.com/google/uuid"
)

// Seed admin credentials. The admin account is created once, on first
// startup against an empty user collection.
const (
	SeedAdminEmail    = "admin@mednetwork.com"
	SeedAdminPassword = "admin123"
)

var seedSpecializations = []models.Specialization{
	{Name: "Cardiology", Description: "Heart and blood vessel care"},
	{Name: "Dermatology", Description: "Skin, hair and nail care"},
	{Name: "Neurology", Description: "Brain and nervous system care"},
	{Name: "Orthopedics", Description: "Bone, joint and muscle care"},
	{Name: "Pediatrics", Description: "Medical care for children"},
	{Name: "Psychiatry", Description: "Mental health care"},
	{Name: "General Medicine", Description: "Primary and preventive care"},
	{Name: "Gynecology", Description: "Women's reproductive health"},
}

type SeedService struct {
	Store store.RecordStore
	Now   func() time.Time
}

func (s *SeedService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

/*
* Create the admin account when the user collection is empty
* Create the specialization catalog when it is empty
* Running twice changes nothing
 */
func (s *SeedService) EnsureSeedData(ctx context.Context) error {
	var users []models.User
	if err := s.Store.GetAll(ctx, store.Users, &users); err != nil {
		return err
	}
	if len(users) == 0 {
		hashed, err := HashPassword(SeedAdminPassword)
		if err != nil {
			return err
		}
		admin := models.User{
			ID:        uuid.NewString(),
			Email:     SeedAdminEmail,
			Name:      "Portal Administrator",
			Role:      models.RoleAdmin,
			Password:  hashed,
			IsActive:  true,
			CreatedAt: s.now(),
		}
		if err := s.Store.Append(ctx, store.Users, admin); err != nil {
			return err
		}
		log.Println("Seeded admin account: ", SeedAdminEmail)
	}

	var specializations []models.Specialization
	if err := s.Store.GetAll(ctx, store.Specializations, &specializations); err != nil {
		return err
	}
	if len(specializations) == 0 {
		for _, sp := range seedSpecializations {
			sp.ID = uuid.NewString()
			if err := s.Store.Append(ctx, store.Specializations, sp); err != nil {
				return err
			}
		}
		log.Println("Seeded specialization catalog")
	}
	return nil
}

/*
* Clear every collection, then seed again from scratch
* Admin only, wired behind the reset endpoint
 */
func (s *SeedService) Reset(ctx context.Context) error {
	for _, key := range store.Keys() {
		if err := s.Store.Clear(ctx, key); err != nil {
			log.Println("Error clearing collection ", key, ": ", err)
			return err
		}
		Notify(key, "cleared", "")
	}
	return s.EnsureSeedData(ctx)
}

package services

import (
	"context"

	"MedNetwork/models"
	"MedNetwork/store"
)

type SpecializationService struct {
	Store store.RecordStore
}

func (s *SpecializationService) List(ctx context.Context) ([]models.Specialization, error) {
	var specializations []models.Specialization
	if err := s.Store.GetAll(ctx, store.Specializations, &specializations); err != nil {
		return nil, err
	}
	if specializations == nil {
		specializations = []models.Specialization{}
	}
	return specializations, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

type warehouseService struct {
	whRepo repository.WarehouseRepository
}

func NewWarehouseService(whRepo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{whRepo: whRepo}
}

func (s *warehouseService) List(ctx context.Context) ([]domain.Warehouse, error) {
	return s.whRepo.List(ctx)
}

func (s *warehouseService) Get(ctx context.Context, id string) (*domain.Warehouse, error) {
	wh, err := s.whRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return wh, nil
}

func (s *warehouseService) Add(ctx context.Context, wh *domain.Warehouse) error {
	if err := s.whRepo.Create(ctx, wh); err != nil {
		return err
	}
	for i := range wh.StorageOptions {
		wh.StorageOptions[i].WarehouseID = wh.ID
		if err := s.whRepo.CreateStorageOption(ctx, &wh.StorageOptions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *warehouseService) Update(ctx context.Context, wh *domain.Warehouse) error {
	if _, err := s.Get(ctx, wh.ID); err != nil {
		return err
	}
	return s.whRepo.Update(ctx, wh)
}

func (s *warehouseService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.whRepo.Delete(ctx, id)
}

func (s *warehouseService) AddStorageOption(ctx context.Context, opt *domain.StorageOption) error {
	if _, err := s.Get(ctx, opt.WarehouseID); err != nil {
		return err
	}
	return s.whRepo.CreateStorageOption(ctx, opt)
}

func (s *warehouseService) RemoveStorageOption(ctx context.Context, id string) error {
	if _, err := s.whRepo.GetStorageOption(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.whRepo.DeleteStorageOption(ctx, id)
}

package service

import (
	"context"
	"database/sql"
	"errors"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/repository"
)

type toolService struct {
	toolRepo repository.ToolRepository
}

func NewToolService(toolRepo repository.ToolRepository) ToolService {
	return &toolService{toolRepo: toolRepo}
}

func (s *toolService) ListAvailable(ctx context.Context, category, query string, maxPrice float64) ([]domain.Tool, error) {
	return s.toolRepo.ListAvailable(ctx, category, query, maxPrice)
}

func (s *toolService) ListAll(ctx context.Context) ([]domain.Tool, error) {
	return s.toolRepo.List(ctx)
}

func (s *toolService) Get(ctx context.Context, id string) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tool, nil
}

func (s *toolService) Add(ctx context.Context, tool *domain.Tool) error {
	return s.toolRepo.Create(ctx, tool)
}

func (s *toolService) Update(ctx context.Context, tool *domain.Tool) error {
	if _, err := s.Get(ctx, tool.ID); err != nil {
		return err
	}
	return s.toolRepo.Update(ctx, tool)
}

func (s *toolService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.toolRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/model"
	"stockroom/internal/repository"
)

type WarehouseService interface {
	Create(ctx context.Context, req dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.WarehouseResponse, error)
	List(ctx context.Context) ([]dto.WarehouseResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type warehouseService struct {
	repo  repository.WarehouseRepository
	items repository.ItemRepository
}

func NewWarehouseService(repo repository.WarehouseRepository, items repository.ItemRepository) WarehouseService {
	return &warehouseService{repo: repo, items: items}
}

func mapWarehouse(w model.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:          w.ID.String(),
		Name:        w.Name,
		Location:    w.Location,
		Description: w.Description,
		CreatedAt:   w.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   w.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (s *warehouseService) Create(ctx context.Context, req dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	existing, err := s.repo.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Storage(err)
	}
	if existing != nil {
		return nil, apierror.Conflictf("a warehouse named %q already exists", existing.Name)
	}

	w := &model.Warehouse{Name: req.Name, Location: req.Location, Description: req.Description}
	if err := s.repo.Create(ctx, w); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflictf("a warehouse named %q already exists", req.Name)
		}
		return nil, apierror.Storage(err)
	}
	resp := mapWarehouse(*w)
	return &resp, nil
}

func (s *warehouseService) Get(ctx context.Context, id uuid.UUID) (*dto.WarehouseResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "warehouse not found")
	}
	resp := mapWarehouse(*w)
	return &resp, nil
}

func (s *warehouseService) List(ctx context.Context) ([]dto.WarehouseResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, apierror.Storage(err)
	}
	out := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		out = append(out, mapWarehouse(w))
	}
	return out, nil
}

func (s *warehouseService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "warehouse not found")
	}

	if req.Name != nil && *req.Name != w.Name {
		existing, err := s.repo.FindByName(ctx, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Storage(err)
		}
		if existing != nil && existing.ID != id {
			return nil, apierror.Conflictf("a warehouse named %q already exists", *req.Name)
		}
		w.Name = *req.Name
	}
	if req.Location != nil {
		w.Location = *req.Location
	}
	if req.Description != nil {
		w.Description = *req.Description
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, apierror.Storage(err)
	}
	resp := mapWarehouse(*w)
	return &resp, nil
}

// Delete refuses to remove a warehouse that still holds items: the caller
// must delete or move them first, otherwise their ledgers would dangle.
func (s *warehouseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return translate(err, "warehouse not found")
	}
	n, err := s.items.CountByWarehouse(ctx, id)
	if err != nil {
		return apierror.Storage(err)
	}
	if n > 0 {
		return apierror.Validationf("warehouse still contains %d item(s)", n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apierror.Storage(err)
	}
	return nil
}

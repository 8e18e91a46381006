package product

import (
	"context"
	"log/slog"

	dom "example.com/inventory-tracker/internal/domain/product"
)

const (
	DefaultPageIndex = 0
	DefaultPageSize  = 10
)

// CreateInput is the new-product request, shared by the HTTP handler
// and the bulk loader. Price is in minor currency units.
type CreateInput struct {
	Name       string
	Price      int64
	Barcode    string
	Department string
	Supplier   string
	StockLevel int64
	MaxStock   int64
}

type Service struct {
	repo dom.Repository
	log  *slog.Logger
}

func NewService(repo dom.Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*dom.Product, error) {
	p := dom.New(in.Name, in.Price, in.Barcode, in.Department, in.Supplier, in.StockLevel, in.MaxStock)
	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Info("product_created", "id", stored.ID, "name", stored.Name)
	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req dom.UpdateRequest) (*dom.Product, error) {
	updated, changed, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("product_updated", "id", id, "version", updated.Version, "changed", changed)
	return updated, nil
}

func (s *Service) Increment(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.AdjustStock(ctx, id, 1)
}

func (s *Service) Decrement(ctx context.Context, id string) (*dom.Product, error) {
	return s.repo.AdjustStock(ctx, id, -1)
}

func (s *Service) Delete(ctx context.Context, id string) (*dom.Product, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("product_deleted", "id", id, "version", deleted.Version)
	return deleted, nil
}

// List applies the default page window when the caller leaves either
// value unset or nonsensical.
func (s *Service) List(ctx context.Context, pageIndex, pageSize int) ([]dom.Product, error) {
	if pageIndex < 0 {
		pageIndex = DefaultPageIndex
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return s.repo.List(ctx, pageIndex, pageSize)
}

func (s *Service) Search(ctx context.Context, term string) ([]dom.SearchResult, error) {
	return s.repo.Search(ctx, term)
}

func (s *Service) Snapshot(ctx context.Context) ([]dom.Product, error) {
	return s.repo.Snapshot(ctx)
}

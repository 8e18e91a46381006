package product

import "context"

// SearchResult is a transient projection produced by Search; it is
// never persisted.
type SearchResult struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance int    `json:"distance"`
}

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Product, []string, error)
	AdjustStock(ctx context.Context, id string, delta int64) (*Product, error)
	Delete(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, pageIndex, pageSize int) ([]Product, error)
	Search(ctx context.Context, term string) ([]SearchResult, error)
	Snapshot(ctx context.Context) ([]Product, error)
}

package memory

import (
	"context"
	"sort"
	"sync"

	domproduct "example.com/inventory-tracker/internal/domain/product"
	"example.com/inventory-tracker/internal/fuzzy"
)

// maxSearchResults caps how many ranked matches Search returns.
const maxSearchResults = 10

// ProductRepository keeps products in insertion order behind a single
// exclusive lock. Every operation, reads included, holds the lock for
// its full duration, so no caller can observe a half-applied mutation.
// Insertion order is the definitive pagination order.
type ProductRepository struct {
	mu       sync.Mutex
	products []*domproduct.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

var _ domproduct.Repository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	r.products = append(r.products, &stored)
	cp := stored
	return &cp, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.locate(id)
	if p == nil {
		return nil, domproduct.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, req domproduct.UpdateRequest) (*domproduct.Product, []string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.locate(id)
	if p == nil {
		return nil, nil, domproduct.ErrProductNotFound
	}
	changed, err := p.ApplyUpdate(req)
	if err != nil {
		return nil, nil, err
	}
	cp := *p
	return &cp, changed, nil
}

func (r *ProductRepository) AdjustStock(ctx context.Context, id string, delta int64) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.locate(id)
	if p == nil {
		return nil, domproduct.ErrProductNotFound
	}
	if p.Deleted {
		return nil, domproduct.ErrProductDeleted
	}
	p.AdjustStock(delta)
	cp := *p
	return &cp, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (*domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.locate(id)
	if p == nil {
		return nil, domproduct.ErrProductNotFound
	}
	p.MarkDeleted()
	cp := *p
	return &cp, nil
}

// List returns the page window over the full ordered collection.
// Out-of-range pages yield an empty slice, never an error. Soft-deleted
// records stay listable.
func (r *ProductRepository) List(ctx context.Context, pageIndex, pageSize int) ([]domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domproduct.Product, 0, pageSize)
	start := pageIndex * pageSize
	if start < 0 || start >= len(r.products) {
		return out, nil
	}
	end := start + pageSize
	if end > len(r.products) {
		end = len(r.products)
	}
	for _, p := range r.products[start:end] {
		out = append(out, *p)
	}
	return out, nil
}

// Search ranks every product name against term and returns the ten
// closest matches, ascending by distance, ties in encounter order.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]domproduct.SearchResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	results := make([]domproduct.SearchResult, 0)
	for _, p := range r.products {
		d, ok := fuzzy.Score(term, p.Name)
		if !ok {
			continue
		}
		results = append(results, domproduct.SearchResult{ID: p.ID, Name: p.Name, Distance: d})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	if len(results) > maxSearchResults {
		results = results[:maxSearchResults]
	}
	return results, nil
}

// Snapshot returns a copy of the whole collection in insertion order.
func (r *ProductRepository) Snapshot(ctx context.Context) ([]domproduct.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domproduct.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

// locate does a linear scan by id; callers hold the lock.
func (r *ProductRepository) locate(id string) *domproduct.Product {
	for _, p := range r.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is one inventory record. Price is held in integer minor
// currency units, never floating point. StockLevel may go negative; no
// floor is enforced.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	Barcode      string    `json:"barcode"`
	Department   string    `json:"department"`
	Supplier     string    `json:"supplier"`
	LabelPrinted *bool     `json:"label_printed"`
	Created      time.Time `json:"created"`
	Updated      time.Time `json:"updated"`
	Deleted      bool      `json:"deleted"`
	StockLevel   int64     `json:"current_stock"`
	MaxStock     int64     `json:"max_stock"`
	Version      int64     `json:"version"`
}

// New returns a freshly created product: unique id, version 0, not
// deleted, timestamps set to now.
func New(name string, price int64, barcode, department, supplier string, stockLevel, maxStock int64) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:         uuid.NewString(),
		Name:       name,
		Price:      price,
		Barcode:    barcode,
		Department: department,
		Supplier:   supplier,
		Created:    now,
		Updated:    now,
		StockLevel: stockLevel,
		MaxStock:   maxStock,
	}
}

// UpdateRequest carries a sparse set of field values plus the version
// the client believes is current. It drives the optimistic-concurrency
// check and is never stored.
type UpdateRequest struct {
	Name         *string          `json:"name,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Barcode      *string          `json:"barcode,omitempty"`
	Department   *string          `json:"department,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	LabelPrinted *bool            `json:"label_printed,omitempty"`
	StockLevel   *int64           `json:"current_stock,omitempty"`
	MaxStock     *int64           `json:"max_stock,omitempty"`
	Version      *int64           `json:"version,omitempty"`
}

var minorUnits = decimal.NewFromInt(100)

// ApplyUpdate overwrites the fields present in req and bumps the
// version. The request version must match the stored version exactly.
// Returns the names of the fields that changed.
func (p *Product) ApplyUpdate(req UpdateRequest) ([]string, error) {
	if p.Deleted {
		return nil, ErrProductDeleted
	}
	if req.Version == nil {
		return nil, ErrMissingVersion
	}
	if *req.Version != p.Version {
		return nil, ErrVersionConflict
	}

	var changed []string
	if req.Name != nil {
		p.Name = *req.Name
		changed = append(changed, "name")
	}
	if req.Price != nil {
		// Request prices arrive as decimals and are stored as minor
		// units via truncating division.
		p.Price = req.Price.Div(minorUnits).IntPart()
		changed = append(changed, "price")
	}
	if req.Barcode != nil {
		p.Barcode = *req.Barcode
		changed = append(changed, "barcode")
	}
	if req.Department != nil {
		p.Department = *req.Department
		changed = append(changed, "department")
	}
	if req.Supplier != nil {
		p.Supplier = *req.Supplier
		changed = append(changed, "supplier")
	}
	if req.LabelPrinted != nil {
		v := *req.LabelPrinted
		p.LabelPrinted = &v
		changed = append(changed, "label_printed")
	}
	if req.StockLevel != nil {
		p.StockLevel = *req.StockLevel
		changed = append(changed, "current_stock")
	}
	if req.MaxStock != nil {
		p.MaxStock = *req.MaxStock
		changed = append(changed, "max_stock")
	}
	if len(changed) == 0 {
		return nil, ErrNoChange
	}

	p.Version++
	p.Updated = time.Now().UTC()
	return changed, nil
}

// MarkDeleted flips the soft-delete flag. Every call bumps the version,
// repeated calls included.
func (p *Product) MarkDeleted() {
	p.Deleted = true
	p.Version++
	p.Updated = time.Now().UTC()
}

// AdjustStock moves the stock level by delta. No bound is checked
// against MaxStock or zero.
func (p *Product) AdjustStock(delta int64) {
	p.StockLevel += delta
	p.Version++
	p.Updated = time.Now().UTC()
}

// Package loader seeds the repository from a delimited product file
// before the server starts. A malformed file aborts startup.
package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"

	domproduct "example.com/inventory-tracker/internal/domain/product"
	productuc "example.com/inventory-tracker/internal/usecase/product"
)

// Creator is the slice of the product service the loader needs.
type Creator interface {
	Create(ctx context.Context, in productuc.CreateInput) (*domproduct.Product, error)
}

// row mirrors one line of the seed file.
type row struct {
	Name         string `csv:"name" validate:"required"`
	Price        int64  `csv:"price" validate:"gte=0"`
	Barcode      string `csv:"barcode"`
	Department   string `csv:"department"`
	Supplier     string `csv:"supplier"`
	CurrentStock int64  `csv:"current_stock"`
	MaxStock     int64  `csv:"max_stock" validate:"gte=0"`
}

// Load reads the file at path and feeds every row through the same
// create path the API uses. Returns the number of products seeded; any
// I/O, parse, or validation failure is fatal to the caller.
func Load(ctx context.Context, path string, svc Creator) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var rows []row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return 0, fmt.Errorf("parse seed file: %w", err)
	}

	validate := validator.New()
	for i, rec := range rows {
		if err := validate.Struct(rec); err != nil {
			return 0, fmt.Errorf("seed row %d: %w", i+1, err)
		}
		_, err := svc.Create(ctx, productuc.CreateInput{
			Name:       rec.Name,
			Price:      rec.Price,
			Barcode:    rec.Barcode,
			Department: rec.Department,
			Supplier:   rec.Supplier,
			StockLevel: rec.CurrentStock,
			MaxStock:   rec.MaxStock,
		})
		if err != nil {
			return 0, fmt.Errorf("seed row %d: %w", i+1, err)
		}
	}
	return len(rows), nil
}

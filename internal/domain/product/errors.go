package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductDeleted  = errors.New("product is deleted")
	ErrMissingVersion  = errors.New("version is required")
	ErrVersionConflict = errors.New("version conflict")
	ErrNoChange        = errors.New("no fields to update")
)

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/inventory-tracker/internal/domain/product"
	productuc "example.com/inventory-tracker/internal/usecase/product"
)

type newProductRequest struct {
	Name         string `json:"name" validate:"required"`
	Price        int64  `json:"price" validate:"gte=0"`
	Barcode      string `json:"barcode"`
	Department   string `json:"department"`
	Supplier     string `json:"supplier"`
	CurrentStock int64  `json:"current_stock"`
	MaxStock     int64  `json:"max_stock" validate:"gte=0"`
}

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req newProductRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondReason(w, err.Error())
		return
	}
	p, err := a.productSvc.Create(r.Context(), productuc.CreateInput{
		Name:       req.Name,
		Price:      req.Price,
		Barcode:    req.Barcode,
		Department: req.Department,
		Supplier:   req.Supplier,
		StockLevel: req.CurrentStock,
		MaxStock:   req.MaxStock,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	pageIndex := queryInt(r, "page_index", productuc.DefaultPageIndex)
	pageSize := queryInt(r, "page_size", productuc.DefaultPageSize)

	products, err := a.productSvc.List(r.Context(), pageIndex, pageSize)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req domproduct.UpdateRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondReason(w, err.Error())
		return
	}
	p, err := a.productSvc.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleIncrementStock(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.Increment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleDecrementStock(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.Decrement(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	results, err := a.productSvc.Search(r.Context(), chi.URLParam(r, "term"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

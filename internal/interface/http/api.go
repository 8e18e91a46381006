// Package http exposes the inventory tracker over HTTP: the product
// CRUD/search API, the live snapshot websocket, and the static table UI.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domproduct "example.com/inventory-tracker/internal/domain/product"
	productuc "example.com/inventory-tracker/internal/usecase/product"
)

type API struct {
	productSvc *productuc.Service
	validator  *validator.Validate
	log        *slog.Logger

	heartbeatInterval time.Duration
	clientTimeout     time.Duration
	staticDir         string
}

type Dependencies struct {
	ProductService    *productuc.Service
	Logger            *slog.Logger
	HeartbeatInterval time.Duration
	ClientTimeout     time.Duration
	StaticDir         string
}

func NewAPI(deps Dependencies) *API {
	return &API{
		productSvc:        deps.ProductService,
		validator:         validator.New(),
		log:               deps.Logger,
		heartbeatInterval: deps.HeartbeatInterval,
		clientTimeout:     deps.ClientTimeout,
		staticDir:         deps.StaticDir,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", a.handleListProducts)
		// The original client creates products with GET; keep both verbs.
		r.Get("/add", a.handleCreateProduct)
		r.Post("/add", a.handleCreateProduct)
		r.Get("/search/{term}", a.handleSearchProducts)
		r.Get("/{id}", a.handleGetProduct)
		r.Post("/{id}", a.handleUpdateProduct)
		r.Put("/{id}/increment", a.handleIncrementStock)
		r.Put("/{id}/decrement", a.handleDecrementStock)
		r.Delete("/{id}", a.handleDeleteProduct)
	})

	r.Get("/ws", a.handleLive)

	if a.staticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(a.staticDir)))
	}

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type reasonResponse struct {
	Reason string `json:"reason"`
}

// respondReason reports a failed operation inside a successful
// transport response; clients tell the outcomes apart by payload shape,
// not status code.
func respondReason(w http.ResponseWriter, reason string) {
	writeJSON(w, http.StatusOK, reasonResponse{Reason: reason})
}

const reasonNotFound = "Product not found"

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondReason(w, reasonNotFound)
	default:
		respondReason(w, err.Error())
	}
}

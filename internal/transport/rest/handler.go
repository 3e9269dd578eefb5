// Package rest provides HTTP handlers for product-related operations and the utility endpoints.
package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	catalogerrors "github.com/abgdnv/minicatalog/internal/errors"
	"github.com/abgdnv/minicatalog/internal/service"
	"github.com/abgdnv/minicatalog/internal/utility"
	"github.com/abgdnv/minicatalog/pkg/web"
	"github.com/go-chi/chi/v5"
)

const routeNotFound = "Route not found"

type Handler struct {
	service service.ProductService
	names   *utility.NameGenerator
	logger  *slog.Logger
}

// NewHandler creates a new Handler backed by the product service and the name generator.
func NewHandler(service service.ProductService, names *utility.NameGenerator, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		names:   names,
		logger:  logger.With("component", "rest"),
	}
}

// PalindromeResponse is returned by GET /palindrome/{word}.
type PalindromeResponse struct {
	Word       string `json:"word"`
	Palindrome bool   `json:"palindrome"`
}

// RandomNameResponse is returned by GET /random-name.
type RandomNameResponse struct {
	Name string `json:"name"`
}

// RegisterRoutes registers the HTTP routes of the catalog.
// Unknown paths and unsupported methods on known paths both answer 404.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.NotFound(h.RouteNotFound)
	r.MethodNotAllowed(h.RouteNotFound)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.FindAll)
		r.Post("/", h.Create)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.FindByID)
			r.Put("/", h.Update)
			r.Delete("/", h.DeleteByID)
		})
	})

	r.Get("/palindrome/*", h.Palindrome)
	r.Get("/random-name", h.RandomName)
	r.Get("/healthz", h.HealthCheck)
}

// FindAll returns every product in insertion order.
func (h *Handler) FindAll(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received request to find all products")
	list, err := h.service.FindAll(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	h.logger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, h.logger, http.StatusOK, list)
}

// FindByID retrieves a product by its ID.
func (h *Handler) FindByID(w http.ResponseWriter, r *http.Request) {
	id := web.PathParam(r, "id")
	h.logger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondProductError(w, r, err, id, "Failed to retrieve product with ID %s")
		return
	}
	web.RespondJSON(w, h.logger, http.StatusOK, found)
}

// Create handles the creation of a new product.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var fields service.ProductFieldsDto
	if err := web.DecodeJSON(r, &fields); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "Received request to create product", "name", fields.Name)

	created, err := h.service.Create(r.Context(), fields)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, h.logger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	h.logger.InfoContext(r.Context(), "Product created successfully", "ID", created.ID, "Name", created.Name)
	web.RespondJSON(w, h.logger, http.StatusCreated, created)
}

// Update replaces the fields of an existing product.
// An unknown ID is reported before the body is read.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := web.PathParam(r, "id")
	h.logger.DebugContext(r.Context(), "Received request to update product", "ID", id)
	if _, err := h.service.FindByID(r.Context(), id); err != nil {
		h.respondProductError(w, r, err, id, "Failed to update product with ID %s")
		return
	}

	var fields service.ProductFieldsDto
	if err := web.DecodeJSON(r, &fields); err != nil {
		h.respondDecodeError(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, fields)
	if err != nil {
		h.respondProductError(w, r, err, id, "Failed to update product with ID %s")
		return
	}
	h.logger.InfoContext(r.Context(), "Product updated successfully", "ID", updated.ID, "Name", updated.Name)
	web.RespondJSON(w, h.logger, http.StatusOK, updated)
}

// DeleteByID deletes a product by its ID.
func (h *Handler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id := web.PathParam(r, "id")
	h.logger.DebugContext(r.Context(), "Received request to delete product", "ID", id)
	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		h.respondProductError(w, r, err, id, "Failed to delete product with ID %s")
		return
	}
	h.logger.InfoContext(r.Context(), "Product deleted successfully", "ID", id)
	w.WriteHeader(http.StatusNoContent)
}

// Palindrome reports whether the rest of the path reads the same both ways.
func (h *Handler) Palindrome(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "*") == "" {
		h.RouteNotFound(w, r)
		return
	}
	word := web.PathParam(r, "*")
	web.RespondJSON(w, h.logger, http.StatusOK, PalindromeResponse{
		Word:       word,
		Palindrome: utility.IsPalindrome(word),
	})
}

// RandomName returns an "Adjective Noun" pair.
func (h *Handler) RandomName(w http.ResponseWriter, _ *http.Request) {
	web.RespondJSON(w, h.logger, http.StatusOK, RandomNameResponse{Name: h.names.Generate()})
}

// HealthCheck is a simple health check endpoint.
func (h *Handler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "No route matched", "method", r.Method, "path", r.URL.Path)
	web.RespondError(w, h.logger, http.StatusNotFound, routeNotFound)
}

func (h *Handler) respondProductError(w http.ResponseWriter, r *http.Request, err error, id, failure string) {
	if errors.Is(err, catalogerrors.ErrProductNotFound) {
		h.logger.WarnContext(r.Context(), "Product not found", "ID", id)
		web.RespondError(w, h.logger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
		return
	}
	h.logger.ErrorContext(r.Context(), "Error handling product request", "ID", id, "error", err)
	web.RespondError(w, h.logger, http.StatusInternalServerError, fmt.Sprintf(failure, id))
}

func (h *Handler) respondDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, web.ErrBodyTooLarge) {
		h.logger.WarnContext(r.Context(), "Request body too large", "error", err)
		web.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	h.logger.WarnContext(r.Context(), "Error decoding request body", "error", err)
	web.RespondError(w, h.logger, http.StatusBadRequest, "Invalid JSON")
}

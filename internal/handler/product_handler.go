package handler

import (
	"errors"
	"net/http"
	"strconv"

	"farmstand/internal/model"
	"farmstand/internal/service"
	"farmstand/internal/session"
	"farmstand/internal/storage"

	"github.com/rs/zerolog"
)

// maxUploadBytes caps multipart form memory for product image uploads.
const maxUploadBytes = 10 << 20 // 10 MB

// ProductHandler handles the product listing and farmer pages.
type ProductHandler struct {
	products service.ProductService
	images   storage.ImageStore
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService, images storage.ImageStore, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		images:   images,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// productsPage is the data passed to the listing templates.
type productsPage struct {
	Products []model.Product
	Error    string
}

// Home handles GET /.
func (h *ProductHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "index.html", nil, h.logger)
}

// List handles GET /products with optional limit/offset query parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			http.Error(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			http.Error(w, "invalid offset parameter", http.StatusBadRequest)
			return
		}
	}

	products, err := h.products.List(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, "failed to retrieve products", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "products.html", productsPage{Products: products}, h.logger)
}

// FarmerDashboard handles GET /farmer, listing the logged-in farmer's
// own products. The farmer gate has already run.
func (h *ProductHandler) FarmerDashboard(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	products, err := h.products.ListByOwner(r.Context(), sess.UserID)
	if err != nil {
		http.Error(w, "failed to retrieve products", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, "farmer.html", productsPage{Products: products}, h.logger)
}

// AddProductPage handles GET /add-product.
func (h *ProductHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "add_product.html", formPage{}, h.logger)
}

// AddProduct handles POST /add-product: a multipart form with an
// optional image upload.
func (h *ProductHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		render(w, http.StatusBadRequest, "add_product.html", formPage{Error: "Invalid form submission"}, h.logger)
		return
	}

	name := r.PostFormValue("name")
	if name == "" {
		render(w, http.StatusBadRequest, "add_product.html", formPage{Error: "Product name is required"}, h.logger)
		return
	}

	price, err := strconv.ParseFloat(r.PostFormValue("price"), 64)
	if err != nil {
		render(w, http.StatusBadRequest, "add_product.html", formPage{Error: "Price must be a number"}, h.logger)
		return
	}

	var description *string
	if d := r.PostFormValue("description"); d != "" {
		description = &d
	}

	var imageURL *string
	file, header, err := r.FormFile("image")
	if err == nil && header.Filename != "" {
		defer file.Close()

		ref, err := h.images.Save(r.Context(), header.Filename, file)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to store product image")
			render(w, http.StatusInternalServerError, "add_product.html", formPage{Error: "Failed to store image, please try again"}, h.logger)
			return
		}
		imageURL = &ref
	}

	_, err = h.products.Create(r.Context(), name, description, price, imageURL, sess.UserID)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPrice) {
			render(w, http.StatusBadRequest, "add_product.html", formPage{Error: model.ErrInvalidPrice.Message}, h.logger)
			return
		}
		h.logger.Error().Err(err).Msg("failed to create product")
		render(w, http.StatusInternalServerError, "add_product.html", formPage{Error: "Something went wrong, please try again"}, h.logger)
		return
	}

	redirect(w, r, "/farmer")
}

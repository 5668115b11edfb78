// Package products implements the catalog handlers: a public listing and
// the admin create/delete lifecycle, including the image round-trip to the
// external media host.
package products

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"sharee/mediahost"
	"sharee/models"
	"sharee/mq"
	"sharee/rdx"
	"sharee/store"
	"sharee/utils"

	"github.com/julienschmidt/httprouter"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = time.Minute
)

// MediaGateway is the slice of the media host client the catalog needs.
type MediaGateway interface {
	Upload(ctx context.Context, data []byte, mimeType string) (mediahost.UploadResult, error)
	Delete(ctx context.Context, handle string) error
}

type Handler struct {
	Products store.ProductStore
	Media    MediaGateway
	Cache    *rdx.Cache
	Emitter  *mq.Emitter
}

// List returns all products, public. The listing is cached briefly since
// the storefront page hits it on every visit.
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if cached, ok := h.Cache.Get(ctx, catalogCacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	products, err := h.Products.List(ctx)
	if err != nil {
		log.Println("products: list error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}

	if data, err := json.Marshal(products); err == nil {
		h.Cache.Set(ctx, catalogCacheKey, string(data), catalogCacheTTL)
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

// Get returns a single product, public.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, err := h.Products.FindByID(ctx, ps.ByName("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("products: find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load product")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

// Create adds a product (admin). The image is uploaded first; if the
// record insert then fails, the uploaded asset is deleted again so nothing
// is left orphaned on the media host.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unable to parse form")
		return
	}

	name := r.FormValue("name")
	details := r.FormValue("details")
	offerPrice, offerErr := strconv.ParseFloat(r.FormValue("offerPrice"), 64)
	regularPrice, regularErr := strconv.ParseFloat(r.FormValue("regularPrice"), 64)

	if name == "" || details == "" || offerErr != nil || regularErr != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Name, details, offerPrice and regularPrice are required")
		return
	}
	if offerPrice <= 0 || regularPrice <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Prices must be positive")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Product image is required")
		return
	}
	defer file.Close()

	mimeType, ok := utils.ImageMimeType(header)
	if !ok {
		utils.RespondWithError(w, http.StatusUnsupportedMediaType, "Unsupported image type. Only JPG, PNG and WEBP are allowed.")
		return
	}

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Could not read image")
		return
	}

	uploaded, err := h.Media.Upload(ctx, imageBytes, mimeType)
	if err != nil {
		log.Println("products: image upload error:", err)
		utils.RespondWithError(w, http.StatusBadGateway, "Failed to upload image")
		return
	}

	now := time.Now()
	product := models.Product{
		ProductID:    utils.GetUUID(),
		Name:         name,
		OfferPrice:   offerPrice,
		RegularPrice: regularPrice,
		Details:      details,
		ImageURL:     uploaded.URL,
		ImageID:      uploaded.Handle,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.Products.Create(ctx, product); err != nil {
		log.Println("products: insert error:", err)
		// Compensate: the record never existed, so the asset must not either.
		if delErr := h.Media.Delete(ctx, uploaded.Handle); delErr != nil {
			log.Println("products: orphan cleanup failed:", delErr)
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add product")
		return
	}

	h.Cache.Del(ctx, catalogCacheKey)
	h.Emitter.Emit(ctx, "product-created", product.ProductID)
	utils.SendResponse(w, http.StatusCreated, product, "Product added successfully", nil)
}

// Delete removes a product and its hosted image (admin). Media deletion is
// best-effort: a dead image host must not make catalog cleanup impossible.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	id := ps.ByName("id")
	product, err := h.Products.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Println("products: find error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	if product.ImageID != "" {
		if err := h.Media.Delete(ctx, product.ImageID); err != nil {
			log.Println("products: media delete failed, continuing:", err)
		}
	}

	if err := h.Products.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Println("products: delete error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	h.Cache.Del(ctx, catalogCacheKey)
	h.Emitter.Emit(ctx, "product-deleted", id)
	utils.SendResponse(w, http.StatusOK, nil, "Product deleted successfully", nil)
}

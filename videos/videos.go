// Package videos manages the single promotional video embed. The store
// keeps at most one; setting a new one replaces the old.
package videos

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"sharee/models"
	"sharee/store"
	"sharee/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Videos store.VideoStore
}

// Replace saves a new promo video URL (admin), deleting any previous one.
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if input.URL == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "No video URL provided.")
		return
	}

	video := models.Video{
		VideoID:   utils.GetUUID(),
		URL:       input.URL,
		Title:     input.Title,
		CreatedAt: time.Now(),
	}
	if err := h.Videos.Replace(ctx, video); err != nil {
		log.Println("videos: replace error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during upload.")
		return
	}
	utils.SendResponse(w, http.StatusCreated, video, "Video saved successfully!", nil)
}

// Latest returns the active promo video, or an empty object when none is
// set so the storefront can simply render nothing.
func (h *Handler) Latest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	video, err := h.Videos.Latest(ctx)
	if errors.Is(err, store.ErrNoVideo) {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{})
		return
	}
	if err != nil {
		log.Println("videos: fetch error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error while fetching video.")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, video)
}

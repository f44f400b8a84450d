package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"OkukujiBackend/config"
	"OkukujiBackend/internal/model"
	"OkukujiBackend/internal/service"
)

type GalleryItem struct {
	Image model.GalleryImage `json:"image"`
	Span  model.Span         `json:"span"`
	Class string             `json:"class"`
}

type GalleryResponse struct {
	Items []GalleryItem `json:"items"`
}

// GetGallery returns this request's selection of photos, laid out for the
// bento grid.
func GetGallery(s service.GalleryService, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryInt(r, "limit", cfg.GalleryLimit)
		if !ok {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}

		assignments := s.Showcase(r.Context(), limit)

		resp := GalleryResponse{Items: make([]GalleryItem, len(assignments))}
		for i, a := range assignments {
			resp.Items[i] = GalleryItem{Image: a.Image, Span: a.Span, Class: a.Span.Class()}
		}

		log.Printf("Gallery: served %d of limit %d", len(resp.Items), limit)
		writeJSON(w, resp)
	}
}

// RecordGalleryView counts a lightbox opening for a locally stored photo.
func RecordGalleryView(s service.GalleryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		err := s.RecordView(r.Context(), id)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, service.ErrNotFound):
			http.Error(w, "Image not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNoDatabase):
			http.Error(w, "View counting unavailable", http.StatusServiceUnavailable)
		default:
			log.Printf("Error recording view for %s: %v", id, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
	}
}

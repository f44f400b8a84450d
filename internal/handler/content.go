package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"OkukujiBackend/internal/service"
)

func GetNews(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryInt(r, "limit", 0)
		if !ok {
			http.Error(w, "Invalid limit parameter", http.StatusBadRequest)
			return
		}
		writeJSON(w, s.News(r.Context(), limit))
	}
}

func GetNewsByID(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		news, err := s.NewsByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, "news", id, err)
			return
		}
		writeJSON(w, news)
	}
}

func GetCourses(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.Courses(r.Context()))
	}
}

func GetCourseByID(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		course, err := s.CourseByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, "course", id, err)
			return
		}
		writeJSON(w, course)
	}
}

func GetSpots(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topOnly := r.URL.Query().Get("top") == "true"
		writeJSON(w, s.Spots(r.Context(), topOnly))
	}
}

func GetSpotByID(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		spot, err := s.SpotByID(r.Context(), id)
		if err != nil {
			writeLookupError(w, "spot", id, err)
			return
		}
		writeJSON(w, spot)
	}
}

func GetAccess(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.Access(r.Context()))
	}
}

// GetHome returns the landing page composition.
func GetHome(s service.ContentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, s.Home(r.Context()))
	}
}

func writeLookupError(w http.ResponseWriter, kind, id string, err error) {
	if errors.Is(err, service.ErrNotFound) {
		http.Error(w, kind+" not found", http.StatusNotFound)
		return
	}
	log.Printf("Error fetching %s %s: %v", kind, id, err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

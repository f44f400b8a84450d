package router

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"OkukujiBackend/config"
	"OkukujiBackend/internal/handler"
	"OkukujiBackend/internal/service"
)

const requestIDHeader = "X-Request-ID"

func setCORSHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check if the request is from a browser
		if origin := r.Header.Get("Origin"); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Printf("[%s] %s %s %d %s", requestID, r.Method, r.RequestURI, rec.status, time.Since(start))
	})
}

func NewRouter(gallerySvc service.GalleryService, contentSvc service.ContentService, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	r.Use(loggingMiddleware)
	r.Use(setCORSHeaders)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/gallery", handler.GetGallery(gallerySvc, cfg)).Methods("GET")
	api.HandleFunc("/gallery/{id}/view", handler.RecordGalleryView(gallerySvc)).Methods("POST", "OPTIONS")

	api.HandleFunc("/home", handler.GetHome(contentSvc)).Methods("GET")
	api.HandleFunc("/news", handler.GetNews(contentSvc)).Methods("GET")
	api.HandleFunc("/news/{id}", handler.GetNewsByID(contentSvc)).Methods("GET")
	api.HandleFunc("/courses", handler.GetCourses(contentSvc)).Methods("GET")
	api.HandleFunc("/courses/{id}", handler.GetCourseByID(contentSvc)).Methods("GET")
	api.HandleFunc("/spots", handler.GetSpots(contentSvc)).Methods("GET")
	api.HandleFunc("/spots/{id}", handler.GetSpotByID(contentSvc)).Methods("GET")
	api.HandleFunc("/access", handler.GetAccess(contentSvc)).Methods("GET")

	r.HandleFunc("/healthcheck", handler.Healthcheck).Methods("GET")

	r.PathPrefix("/static/gallery/").Handler(http.StripPrefix("/static/gallery/", http.FileServer(http.Dir(cfg.GalleryDir))))

	return r
}

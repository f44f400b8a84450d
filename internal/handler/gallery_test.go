package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OkukujiBackend/config"
	"OkukujiBackend/internal/model"
	"OkukujiBackend/internal/service"
)

type stubGallery struct {
	viewErr   error
	lastLimit int
}

func (s *stubGallery) Catalog(ctx context.Context) []model.GalleryImage { return nil }

func (s *stubGallery) Showcase(ctx context.Context, limit int) []model.LayoutAssignment {
	s.lastLimit = limit
	return []model.LayoutAssignment{}
}

func (s *stubGallery) RecordView(ctx context.Context, id string) error { return s.viewErr }

func TestRecordGalleryViewStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, http.StatusNoContent},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"no database", service.ErrNoDatabase, http.StatusServiceUnavailable},
		{"other", errors.New("conn reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/gallery/a/view", nil)
			req = mux.SetURLVars(req, map[string]string{"id": "a"})
			rec := httptest.NewRecorder()

			RecordGalleryView(&stubGallery{viewErr: tt.err})(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestGetGalleryUsesConfiguredLimit(t *testing.T) {
	s := &stubGallery{}
	rec := httptest.NewRecorder()

	GetGallery(s, &config.Config{GalleryLimit: 8})(rec, httptest.NewRequest(http.MethodGet, "/api/gallery", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 8, s.lastLimit)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

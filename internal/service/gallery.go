package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"golang.org/x/sync/singleflight"

	"OkukujiBackend/internal/cms"
	"OkukujiBackend/internal/gallery"
	"OkukujiBackend/internal/model"
	"OkukujiBackend/internal/repository/postgres"
)

// ErrNoDatabase is returned by operations that need the local gallery store
// when no database is configured.
var ErrNoDatabase = errors.New("gallery database not configured")

type CatalogSource interface {
	ListGallery(ctx context.Context) ([]model.GalleryImage, error)
}

type ViewCounter interface {
	IncreaseViewCount(ctx context.Context, id string) error
}

// Source is a named catalog source; the name only shows up in logs.
type Source struct {
	Name    string
	Catalog CatalogSource
}

type GalleryService interface {
	Catalog(ctx context.Context) []model.GalleryImage
	Showcase(ctx context.Context, limit int) []model.LayoutAssignment
	RecordView(ctx context.Context, id string) error
}

type galleryServiceImpl struct {
	sources  []Source
	counter  ViewCounter
	selector *gallery.Selector
	group    singleflight.Group
}

// NewGalleryService builds the gallery service. Sources are tried in order
// and the first non-empty catalog wins; the built-in fixtures are the last
// resort. counter may be nil.
func NewGalleryService(selector *gallery.Selector, counter ViewCounter, sources ...Source) GalleryService {
	if selector == nil {
		selector = gallery.NewSelector()
	}
	return &galleryServiceImpl{
		sources:  sources,
		counter:  counter,
		selector: selector,
	}
}

func (s *galleryServiceImpl) Catalog(ctx context.Context) []model.GalleryImage {
	images, err := shared(ctx, &s.group, "catalog", func(ctx context.Context) ([]model.GalleryImage, error) {
		return s.loadCatalog(ctx), nil
	})
	if err != nil {
		log.Printf("GalleryService: catalog wait: %v", err)
		return cms.FallbackGallery()
	}
	return images
}

func (s *galleryServiceImpl) loadCatalog(ctx context.Context) []model.GalleryImage {
	for _, src := range s.sources {
		images, err := src.Catalog.ListGallery(ctx)
		if err != nil {
			log.Printf("GalleryService: %s catalog failed: %v", src.Name, err)
			continue
		}
		if len(images) == 0 {
			log.Printf("GalleryService: %s catalog is empty", src.Name)
			continue
		}
		return images
	}
	log.Println("GalleryService: using fallback gallery")
	return cms.FallbackGallery()
}

func (s *galleryServiceImpl) Showcase(ctx context.Context, limit int) []model.LayoutAssignment {
	return s.selector.Showcase(s.Catalog(ctx), limit)
}

func (s *galleryServiceImpl) RecordView(ctx context.Context, id string) error {
	if s.counter == nil {
		return ErrNoDatabase
	}
	err := s.counter.IncreaseViewCount(ctx, id)
	if errors.Is(err, postgres.ErrImageNotFound) {
		return ErrNotFound
	}
	return err
}

// WithBaseURL turns the relative file paths of a local catalog into public
// URLs.
func WithBaseURL(src CatalogSource, baseURL string) CatalogSource {
	return baseURLSource{src: src, baseURL: baseURL}
}

type baseURLSource struct {
	src     CatalogSource
	baseURL string
}

func (b baseURLSource) ListGallery(ctx context.Context) ([]model.GalleryImage, error) {
	images, err := b.src.ListGallery(ctx)
	if err != nil {
		return nil, err
	}
	for i := range images {
		images[i].ImageURL = joinURL(b.baseURL, images[i].ImageURL)
		if images[i].ThumbURL != "" {
			images[i].ThumbURL = joinURL(b.baseURL, images[i].ThumbURL)
		}
	}
	return images, nil
}

func joinURL(base, path string) string {
	if base == "" {
		return "/" + strings.TrimPrefix(path, "/")
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

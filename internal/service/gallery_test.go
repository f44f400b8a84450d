package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OkukujiBackend/internal/cms"
	"OkukujiBackend/internal/gallery"
	"OkukujiBackend/internal/model"
	"OkukujiBackend/internal/repository/postgres"
)

type stubCatalog struct {
	images []model.GalleryImage
	err    error
	calls  int
}

func (s *stubCatalog) ListGallery(ctx context.Context) ([]model.GalleryImage, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]model.GalleryImage, len(s.images))
	copy(out, s.images)
	return out, nil
}

// blockingCatalog holds every ListGallery call until release is closed or
// the call's context ends.
type blockingCatalog struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newBlockingCatalog() *blockingCatalog {
	return &blockingCatalog{started: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingCatalog) ListGallery(ctx context.Context) ([]model.GalleryImage, error) {
	b.once.Do(func() { close(b.started) })
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.release:
		return []model.GalleryImage{{ID: "cms-photo"}}, nil
	}
}

type stubCounter struct {
	ids []string
	err error
}

func (s *stubCounter) IncreaseViewCount(ctx context.Context, id string) error {
	s.ids = append(s.ids, id)
	return s.err
}

func julySelector() *gallery.Selector {
	return &gallery.Selector{
		Now:       func() time.Time { return time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC) },
		NewSource: gallery.NewSource,
	}
}

func TestCatalogFirstNonEmptySourceWins(t *testing.T) {
	failing := &stubCatalog{err: errors.New("cms down")}
	empty := &stubCatalog{}
	local := &stubCatalog{images: []model.GalleryImage{{ID: "local-1"}}}
	unused := &stubCatalog{images: []model.GalleryImage{{ID: "never"}}}

	svc := NewGalleryService(julySelector(), nil,
		Source{Name: "cms", Catalog: failing},
		Source{Name: "empty", Catalog: empty},
		Source{Name: "postgres", Catalog: local},
		Source{Name: "unused", Catalog: unused},
	)

	got := svc.Catalog(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "local-1", got[0].ID)
	assert.Zero(t, unused.calls, "sources after the first non-empty one must not be queried")
}

func TestCatalogFallsBackToFixtures(t *testing.T) {
	svc := NewGalleryService(julySelector(), nil, Source{Name: "cms", Catalog: &stubCatalog{err: errors.New("down")}})

	got := svc.Catalog(context.Background())
	assert.Len(t, got, len(cms.FallbackGallery()))
}

func TestCatalogSurvivesCancelledFirstCaller(t *testing.T) {
	src := newBlockingCatalog()
	svc := NewGalleryService(julySelector(), nil, Source{Name: "cms", Catalog: src})

	ctxA, cancelA := context.WithCancel(context.Background())
	defer cancelA()
	resultA := make(chan []model.GalleryImage, 1)
	go func() { resultA <- svc.Catalog(ctxA) }()
	<-src.started

	resultB := make(chan []model.GalleryImage, 1)
	go func() { resultB <- svc.Catalog(context.Background()) }()
	// let B join the flight A started
	time.Sleep(20 * time.Millisecond)

	cancelA()
	select {
	case a := <-resultA:
		assert.Len(t, a, len(cms.FallbackGallery()), "a cancelled caller gets the fallback gallery")
	case <-time.After(time.Second):
		t.Fatal("cancelled caller kept waiting for the shared load")
	}

	close(src.release)
	select {
	case b := <-resultB:
		require.Len(t, b, 1)
		assert.Equal(t, "cms-photo", b[0].ID)
	case <-time.After(time.Second):
		t.Fatal("live caller never got the catalog")
	}
}

func TestShowcaseSelectsAndLaysOut(t *testing.T) {
	svc := NewGalleryService(julySelector(), nil)

	got := svc.Showcase(context.Background(), 5)
	require.Len(t, got, 5)
	assert.Equal(t, gallery.SpanFull, got[4].Span)
}

func TestRecordView(t *testing.T) {
	ctx := context.Background()

	svc := NewGalleryService(nil, nil)
	assert.ErrorIs(t, svc.RecordView(ctx, "x"), ErrNoDatabase)

	counter := &stubCounter{}
	svc = NewGalleryService(nil, counter)
	require.NoError(t, svc.RecordView(ctx, "kuji-river"))
	assert.Equal(t, []string{"kuji-river"}, counter.ids)

	svc = NewGalleryService(nil, &stubCounter{err: postgres.ErrImageNotFound})
	assert.ErrorIs(t, svc.RecordView(ctx, "gone"), ErrNotFound)

	boom := errors.New("connection refused")
	svc = NewGalleryService(nil, &stubCounter{err: boom})
	assert.ErrorIs(t, svc.RecordView(ctx, "kuji-river"), boom)
}

func TestWithBaseURL(t *testing.T) {
	src := &stubCatalog{images: []model.GalleryImage{
		{ID: "a", ImageURL: "static/gallery/a.jpg", ThumbURL: "static/gallery/a_thumb.jpg"},
		{ID: "b", ImageURL: "/static/gallery/b.jpg"},
	}}

	got, err := WithBaseURL(src, "https://cdn.example/").ListGallery(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/static/gallery/a.jpg", got[0].ImageURL)
	assert.Equal(t, "https://cdn.example/static/gallery/a_thumb.jpg", got[0].ThumbURL)
	assert.Empty(t, got[1].ThumbURL, "empty thumb must stay empty")

	got, err = WithBaseURL(src, "").ListGallery(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/static/gallery/a.jpg", got[0].ImageURL)
}

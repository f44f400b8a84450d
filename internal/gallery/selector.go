package gallery

import (
	"time"

	"OkukujiBackend/internal/model"
)

// DefaultLimit is the number of photos shown when the caller does not ask
// for a specific count.
const DefaultLimit = 10

// Select picks up to limit images for the given month. Seasonal images are
// taken first, the remainder is filled from the other images, and the
// combined list is shuffled once more so both groups interleave.
func Select(catalog []model.GalleryImage, limit int, month time.Month, src Source) []model.GalleryImage {
	if len(catalog) == 0 || limit <= 0 {
		return []model.GalleryImage{}
	}

	priority, others := Partition(catalog, month)
	priority = Shuffle(priority, src)
	others = Shuffle(others, src)

	result := make([]model.GalleryImage, 0, min(limit, len(catalog)))
	if len(priority) >= limit {
		result = append(result, priority[:limit]...)
	} else {
		result = append(result, priority...)
		fill := min(limit-len(priority), len(others))
		result = append(result, others[:fill]...)
	}

	return Shuffle(result, src)
}

// Selector binds Select to the wall clock and a per-call random source.
type Selector struct {
	Now       func() time.Time
	NewSource func() Source
}

func NewSelector() *Selector {
	return &Selector{
		Now:       time.Now,
		NewSource: NewSource,
	}
}

func (s *Selector) Select(catalog []model.GalleryImage, limit int) []model.GalleryImage {
	return Select(catalog, limit, s.Now().Month(), s.NewSource())
}

// Showcase selects images and lays them out in one step.
func (s *Selector) Showcase(catalog []model.GalleryImage, limit int) []model.LayoutAssignment {
	return AssignLayout(s.Select(catalog, limit))
}

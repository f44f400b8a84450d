package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	// SeasonAll marks an image as suitable for every season.
	SeasonAll Season = "all"
)

// ParseSeason normalizes a raw tag. Editors sometimes type full-width
// characters in the CMS, so the input is width-folded first.
func ParseSeason(raw string) (Season, bool) {
	switch s := Season(normalizeTag(raw)); s {
	case SeasonSpring, SeasonSummer, SeasonAutumn, SeasonAll:
		return s, true
	}
	return "", false
}

// ParseSeasons keeps the recognised tags of raw in order and drops the rest.
func ParseSeasons(raw []string) []Season {
	seasons := make([]Season, 0, len(raw))
	for _, r := range raw {
		if s, ok := ParseSeason(r); ok {
			seasons = append(seasons, s)
		}
	}
	return seasons
}

type GridSize string

const (
	GridLarge  GridSize = "large"
	GridMedium GridSize = "medium"
	GridSmall  GridSize = "small"
)

func ParseGridSize(raw string) (GridSize, bool) {
	switch g := GridSize(normalizeTag(raw)); g {
	case GridLarge, GridMedium, GridSmall:
		return g, true
	}
	return "", false
}

func normalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(raw)))
}

// GalleryImage is one photo of the gallery catalog.
type GalleryImage struct {
	ID           string   `json:"id"`
	ImageURL     string   `json:"image_url"`
	ThumbURL     string   `json:"thumb_url,omitempty"`
	LocationName string   `json:"location_name"`
	MapURL       string   `json:"map_url,omitempty"`
	Seasons      []Season `json:"seasons"`
	GridSizeHint GridSize `json:"grid_size_hint,omitempty"`
	ViewCount    int      `json:"view_count"`
}

// Tagged reports whether the image carries at least one of the given seasons.
func (g GalleryImage) Tagged(seasons ...Season) bool {
	for _, have := range g.Seasons {
		for _, want := range seasons {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Extent is a number of grid cells in each direction.
type Extent struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// Span is the footprint of a tile on the 2-column (narrow) and 4-column
// (wide) gallery grid.
type Span struct {
	Narrow Extent `json:"narrow"`
	Wide   Extent `json:"wide"`
}

// Class renders the span as the utility classes used by the page layer.
func (s Span) Class() string {
	return fmt.Sprintf("col-span-%d row-span-%d md:col-span-%d md:row-span-%d",
		s.Narrow.Columns, s.Narrow.Rows, s.Wide.Columns, s.Wide.Rows)
}

type LayoutAssignment struct {
	Image GalleryImage `json:"image"`
	Span  Span         `json:"span"`
}

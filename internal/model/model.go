package model

import (
	"regexp"
	"strconv"
	"time"
)

// CMSImage is an image field as returned by the content store.
type CMSImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Timestamps are attached to every content record.
type Timestamps struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PublishedAt time.Time `json:"publishedAt"`
	RevisedAt   time.Time `json:"revisedAt"`
}

// ListResponse is the envelope of every list endpoint.
type ListResponse[T any] struct {
	Contents   []T `json:"contents"`
	TotalCount int `json:"totalCount"`
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
}

type News struct {
	ID string `json:"id"`
	Timestamps
	Title       string    `json:"title"`
	PublishDate string    `json:"publishDate"`
	Category    string    `json:"category"`
	Eyecatch    *CMSImage `json:"eyecatch,omitempty"`
	Content     string    `json:"content"`
}

type Course struct {
	ID string `json:"id"`
	Timestamps
	Name        string   `json:"name"`
	Summary     string   `json:"summary"`
	Distance    float64  `json:"distance"`
	Elevation   float64  `json:"elevation"`
	Duration    string   `json:"duration"`
	Difficulty  string   `json:"difficulty"`
	Seasons     []string `json:"seasons,omitempty"`
	MainImage   CMSImage `json:"mainImage"`
	GPXURL      string   `json:"gpxUrl,omitempty"`
	Description string   `json:"description"`
	Caution     string   `json:"caution,omitempty"`
}

var difficultyStars = regexp.MustCompile(`★(\d)`)

// DifficultyStars extracts the star rating from labels like "★3（中級）".
func (c Course) DifficultyStars() int {
	m := difficultyStars.FindStringSubmatch(c.Difficulty)
	if len(m) != 2 {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}

type Spot struct {
	ID string `json:"id"`
	Timestamps
	Name        string    `json:"name"`
	Categories  []string  `json:"categories"`
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Image       *CMSImage `json:"image,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ShowOnTop   bool      `json:"show_on_top"`
}

// Access describes one way of reaching the area (train, car).
type Access struct {
	ID string `json:"id"`
	Timestamps
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Items    []string `json:"items"`
}

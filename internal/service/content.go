package service

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strconv"

	"golang.org/x/sync/singleflight"

	"OkukujiBackend/internal/cms"
	"OkukujiBackend/internal/model"
)

var ErrNotFound = errors.New("content not found")

// ContentSource is the read API of the content store.
type ContentSource interface {
	GetNews(ctx context.Context, query url.Values) (model.ListResponse[model.News], error)
	GetNewsByID(ctx context.Context, id string) (*model.News, error)
	GetCourses(ctx context.Context, query url.Values) (model.ListResponse[model.Course], error)
	GetCourseByID(ctx context.Context, id string) (*model.Course, error)
	GetSpots(ctx context.Context, query url.Values) (model.ListResponse[model.Spot], error)
	GetSpotByID(ctx context.Context, id string) (*model.Spot, error)
	GetAccess(ctx context.Context, query url.Values) (model.ListResponse[model.Access], error)
}

// Home is everything the landing page shows.
type Home struct {
	News       []model.News   `json:"news"`
	MainCourse *model.Course  `json:"main_course"`
	Spots      []model.Spot   `json:"spots"`
	Access     []model.Access `json:"access"`
}

type ContentService interface {
	News(ctx context.Context, limit int) []model.News
	NewsByID(ctx context.Context, id string) (*model.News, error)
	Courses(ctx context.Context) []model.Course
	CourseByID(ctx context.Context, id string) (*model.Course, error)
	Spots(ctx context.Context, topOnly bool) []model.Spot
	SpotByID(ctx context.Context, id string) (*model.Spot, error)
	Access(ctx context.Context) []model.Access
	Home(ctx context.Context) Home
}

const homeNewsCount = 3

type contentServiceImpl struct {
	src   ContentSource
	group singleflight.Group
}

// NewContentService wraps src with fallback content. A nil src serves the
// fallback content only.
func NewContentService(src ContentSource) ContentService {
	return &contentServiceImpl{src: src}
}

func (s *contentServiceImpl) News(ctx context.Context, limit int) []model.News {
	fallback := cms.FallbackNews()
	if limit > 0 && len(fallback) > limit {
		fallback = fallback[:limit]
	}
	if s.src == nil {
		return fallback
	}

	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	list, err := shared(ctx, &s.group, "news?"+query.Encode(), func(ctx context.Context) (model.ListResponse[model.News], error) {
		return s.src.GetNews(ctx, query)
	})
	if err != nil {
		log.Printf("ContentService: fetch news: %v", err)
		return fallback
	}
	if len(list.Contents) == 0 {
		return fallback
	}
	return list.Contents
}

func (s *contentServiceImpl) NewsByID(ctx context.Context, id string) (*model.News, error) {
	if s.src != nil {
		news, err := shared(ctx, &s.group, "news/"+id, func(ctx context.Context) (*model.News, error) {
			return s.src.GetNewsByID(ctx, id)
		})
		if err == nil {
			return news, nil
		}
		if !errors.Is(err, cms.ErrNotFound) {
			log.Printf("ContentService: fetch news %s: %v", id, err)
		}
	}
	if news := cms.FallbackNewsByID(id); news != nil {
		return news, nil
	}
	return nil, ErrNotFound
}

func (s *contentServiceImpl) Courses(ctx context.Context) []model.Course {
	if s.src == nil {
		return cms.FallbackCourses()
	}
	query := url.Values{"limit": {"100"}}
	list, err := shared(ctx, &s.group, "courses", func(ctx context.Context) (model.ListResponse[model.Course], error) {
		return s.src.GetCourses(ctx, query)
	})
	if err != nil {
		log.Printf("ContentService: fetch courses: %v", err)
		return cms.FallbackCourses()
	}
	return nonNil(list.Contents)
}

func (s *contentServiceImpl) CourseByID(ctx context.Context, id string) (*model.Course, error) {
	if s.src == nil {
		return nil, ErrNotFound
	}
	course, err := shared(ctx, &s.group, "courses/"+id, func(ctx context.Context) (*model.Course, error) {
		return s.src.GetCourseByID(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, cms.ErrNotFound) {
			log.Printf("ContentService: fetch course %s: %v", id, err)
		}
		return nil, ErrNotFound
	}
	return course, nil
}

func (s *contentServiceImpl) mainCourse(ctx context.Context) *model.Course {
	if s.src == nil {
		return nil
	}
	list, err := shared(ctx, &s.group, "courses?limit=1", func(ctx context.Context) (model.ListResponse[model.Course], error) {
		return s.src.GetCourses(ctx, url.Values{"limit": {"1"}})
	})
	if err != nil {
		log.Printf("ContentService: fetch main course: %v", err)
		return nil
	}
	if len(list.Contents) == 0 {
		return nil
	}
	course := list.Contents[0]
	return &course
}

func (s *contentServiceImpl) Spots(ctx context.Context, topOnly bool) []model.Spot {
	if s.src == nil {
		return cms.FallbackSpots()
	}
	query := url.Values{"limit": {"100"}}
	if topOnly {
		query = url.Values{"filters": {"show_on_top[equals]true"}, "limit": {"10"}}
	}
	list, err := shared(ctx, &s.group, "spots?"+query.Encode(), func(ctx context.Context) (model.ListResponse[model.Spot], error) {
		return s.src.GetSpots(ctx, query)
	})
	if err != nil {
		log.Printf("ContentService: fetch spots: %v", err)
		return cms.FallbackSpots()
	}
	return nonNil(list.Contents)
}

func (s *contentServiceImpl) SpotByID(ctx context.Context, id string) (*model.Spot, error) {
	if s.src == nil {
		return nil, ErrNotFound
	}
	spot, err := shared(ctx, &s.group, "spots/"+id, func(ctx context.Context) (*model.Spot, error) {
		return s.src.GetSpotByID(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, cms.ErrNotFound) {
			log.Printf("ContentService: fetch spot %s: %v", id, err)
		}
		return nil, ErrNotFound
	}
	return spot, nil
}

func (s *contentServiceImpl) Access(ctx context.Context) []model.Access {
	if s.src == nil {
		return cms.FallbackAccess()
	}
	list, err := shared(ctx, &s.group, "access", func(ctx context.Context) (model.ListResponse[model.Access], error) {
		return s.src.GetAccess(ctx, nil)
	})
	if err != nil {
		log.Printf("ContentService: fetch access: %v", err)
		return cms.FallbackAccess()
	}
	if len(list.Contents) == 0 {
		return cms.FallbackAccess()
	}
	return list.Contents
}

func (s *contentServiceImpl) Home(ctx context.Context) Home {
	return Home{
		News:       s.News(ctx, homeNewsCount),
		MainCourse: s.mainCourse(ctx),
		Spots:      s.Spots(ctx, true),
		Access:     s.Access(ctx),
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

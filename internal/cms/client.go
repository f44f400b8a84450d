package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"OkukujiBackend/internal/model"
)

// ErrNotFound is returned when the content store answers 404.
var ErrNotFound = errors.New("cms: content not found")

const apiKeyHeader = "X-MICROCMS-API-KEY"

// Client talks to the microCMS REST API of one service.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(serviceDomain, apiKey string) *Client {
	return &Client{
		BaseURL: fmt.Sprintf("https://%s.microcms.io/api/v1", serviceDomain),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := strings.TrimSuffix(c.BaseURL, "/") + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set(apiKeyHeader, c.APIKey)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cms: request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, endpoint)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("cms: %s: status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cms: decode %s: %w", endpoint, err)
	}
	return nil
}

func getList[T any](ctx context.Context, c *Client, endpoint string, query url.Values) (model.ListResponse[T], error) {
	var list model.ListResponse[T]
	err := c.get(ctx, endpoint, query, &list)
	return list, err
}

func getByID[T any](ctx context.Context, c *Client, endpoint, id string) (*T, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty %s id", ErrNotFound, endpoint)
	}
	var item T
	if err := c.get(ctx, endpoint+"/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) GetNews(ctx context.Context, query url.Values) (model.ListResponse[model.News], error) {
	return getList[model.News](ctx, c, "news", query)
}

func (c *Client) GetNewsByID(ctx context.Context, id string) (*model.News, error) {
	return getByID[model.News](ctx, c, "news", id)
}

func (c *Client) GetCourses(ctx context.Context, query url.Values) (model.ListResponse[model.Course], error) {
	return getList[model.Course](ctx, c, "courses", query)
}

func (c *Client) GetCourseByID(ctx context.Context, id string) (*model.Course, error) {
	return getByID[model.Course](ctx, c, "courses", id)
}

func (c *Client) GetSpots(ctx context.Context, query url.Values) (model.ListResponse[model.Spot], error) {
	return getList[model.Spot](ctx, c, "spots", query)
}

func (c *Client) GetSpotByID(ctx context.Context, id string) (*model.Spot, error) {
	return getByID[model.Spot](ctx, c, "spots", id)
}

func (c *Client) GetAccess(ctx context.Context, query url.Values) (model.ListResponse[model.Access], error) {
	return getList[model.Access](ctx, c, "access", query)
}

// galleryRecord is the shape of the "gallery" API. Select fields come back
// as string lists even when only one value is allowed.
type galleryRecord struct {
	ID       string         `json:"id"`
	Image    model.CMSImage `json:"image"`
	Location string         `json:"location"`
	MapLink  string         `json:"mapLink"`
	Season   []string       `json:"season"`
	GridSize []string       `json:"gridSize"`
}

func (r galleryRecord) toImage() model.GalleryImage {
	img := model.GalleryImage{
		ID:           r.ID,
		ImageURL:     r.Image.URL,
		LocationName: r.Location,
		MapURL:       r.MapLink,
		Seasons:      model.ParseSeasons(r.Season),
	}
	if r.Image.URL != "" {
		img.ThumbURL = OptimizeImageURL(r.Image.URL, ImageOptions{Width: 640})
	}
	if len(r.GridSize) > 0 {
		if g, ok := model.ParseGridSize(r.GridSize[0]); ok {
			img.GridSizeHint = g
		}
	}
	return img
}

// ListGallery fetches the whole gallery catalog.
func (c *Client) ListGallery(ctx context.Context) ([]model.GalleryImage, error) {
	list, err := getList[galleryRecord](ctx, c, "gallery", url.Values{"limit": {"100"}})
	if err != nil {
		return nil, err
	}
	images := make([]model.GalleryImage, 0, len(list.Contents))
	for _, r := range list.Contents {
		images = append(images, r.toImage())
	}
	return images, nil
}

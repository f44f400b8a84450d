package cms

import (
	"strconv"
	"strings"
)

// ImageOptions are the image API transformations understood by the CDN.
// Zero values fall back to webp at quality 80 in the original size.
type ImageOptions struct {
	Width   int
	Height  int
	Format  string
	Quality int
}

// OptimizeImageURL appends the CDN transformation parameters to rawURL.
func OptimizeImageURL(rawURL string, opts ImageOptions) string {
	format := opts.Format
	if format == "" {
		format = "webp"
	}
	quality := opts.Quality
	if quality == 0 {
		quality = 80
	}

	params := []string{"fm=" + format, "q=" + strconv.Itoa(quality)}
	if opts.Width > 0 {
		params = append(params, "w="+strconv.Itoa(opts.Width))
	}
	if opts.Height > 0 {
		params = append(params, "h="+strconv.Itoa(opts.Height))
	}

	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + strings.Join(params, "&")
}

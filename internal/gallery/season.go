package gallery

import (
	"time"

	"OkukujiBackend/internal/model"
)

// TargetSeasons maps a calendar month to the season whose photos are
// promoted. There is no winter tag: December through April show spring.
func TargetSeasons(month time.Month) []model.Season {
	switch {
	case month >= time.May && month <= time.August:
		return []model.Season{model.SeasonSummer}
	case month >= time.September && month <= time.November:
		return []model.Season{model.SeasonAutumn}
	default:
		return []model.Season{model.SeasonSpring}
	}
}

// Partition splits catalog into images matching the month's season (or
// tagged "all") and the rest. Relative order is preserved in both.
func Partition(catalog []model.GalleryImage, month time.Month) (priority, others []model.GalleryImage) {
	wanted := append(TargetSeasons(month), model.SeasonAll)
	for _, img := range catalog {
		if img.Tagged(wanted...) {
			priority = append(priority, img)
		} else {
			others = append(others, img)
		}
	}
	return priority, others
}

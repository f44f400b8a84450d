package gallery

import "OkukujiBackend/internal/model"

// Tile shapes of the bento grid. Narrow is the 2-column phone grid, Wide the
// 4-column desktop grid.
var (
	SpanLarge = model.Span{Narrow: model.Extent{Columns: 2, Rows: 2}, Wide: model.Extent{Columns: 2, Rows: 2}}
	SpanSmall = model.Span{Narrow: model.Extent{Columns: 1, Rows: 1}, Wide: model.Extent{Columns: 1, Rows: 1}}
	SpanWide  = model.Span{Narrow: model.Extent{Columns: 2, Rows: 1}, Wide: model.Extent{Columns: 2, Rows: 1}}
	SpanFull  = model.Span{Narrow: model.Extent{Columns: 2, Rows: 2}, Wide: model.Extent{Columns: 4, Rows: 2}}
	SpanHalf  = model.Span{Narrow: model.Extent{Columns: 1, Rows: 1}, Wide: model.Extent{Columns: 2, Rows: 1}}
	SpanTall  = model.Span{Narrow: model.Extent{Columns: 1, Rows: 2}, Wide: model.Extent{Columns: 1, Rows: 2}}
)

// blockCycle fills exactly one 4x2 block on the wide grid and four rows on
// the narrow grid.
var blockCycle = [4]model.Span{SpanLarge, SpanSmall, SpanSmall, SpanWide}

// SpanAt returns the span of position i in a sequence of n images.
//
// Positions before the last n%4 follow blockCycle. The trailing n%4 images
// are reshaped so that the final rows are complete:
//
//	1 left: one full-width tile
//	2 left: two half-width tiles
//	3 left: one large tile and two tall tiles
func SpanAt(i, n int) model.Span {
	remainder := n % 4
	tailStart := n - remainder
	if i < tailStart {
		return blockCycle[i%4]
	}

	switch remainder {
	case 1:
		return SpanFull
	case 2:
		return SpanHalf
	default:
		if i == tailStart {
			return SpanLarge
		}
		return SpanTall
	}
}

// AssignLayout pairs every image with its span. The result depends only on
// the order of images. Grid size hints on the images are not applied: an
// override can leave holes in the final rows.
func AssignLayout(images []model.GalleryImage) []model.LayoutAssignment {
	out := make([]model.LayoutAssignment, len(images))
	for i, img := range images {
		out[i] = model.LayoutAssignment{Image: img, Span: SpanAt(i, len(images))}
	}
	return out
}

package cms

import (
	"bytes"
	"log"
	"time"

	"github.com/yuin/goldmark"

	"OkukujiBackend/internal/model"
)

// Fallback content shown when the content store is unreachable or empty.
// Accessors return fresh copies; the package-level values are never handed out.

var fixtureTime = model.Timestamps{
	CreatedAt:   time.Date(2026, time.February, 6, 9, 0, 0, 0, time.UTC),
	UpdatedAt:   time.Date(2026, time.February, 6, 9, 0, 0, 0, time.UTC),
	PublishedAt: time.Date(2026, time.February, 6, 9, 0, 0, 0, time.UTC),
	RevisedAt:   time.Date(2026, time.February, 6, 9, 0, 0, 0, time.UTC),
}

type newsFixture struct {
	id, title, date, category string
	eyecatch                  *model.CMSImage
	markdown                  string
}

var newsFixtures = []newsFixture{
	{
		id:       "news-001",
		title:    "【2026/02/15】春のサイクリングイベント開催決定！",
		date:     "2026-02-15",
		category: "イベント",
		eyecatch: &model.CMSImage{URL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1200", Width: 1200, Height: 630},
		markdown: `## 春の奥久慈を駆け抜けよう

2026年3月21日（土）、奥久慈街道サイクリングの春イベントを開催します。

初心者向けの20kmコースから、上級者向けの80kmコースまで、レベルに合わせてお選びいただけます。

- 参加費：1,500円（保険料込み）
- 定員：各コース50名
- 申込締切：3月10日
`,
	},
	{
		id:       "news-002",
		title:    "県道118号線の一部通行規制のお知らせ",
		date:     "2026-02-10",
		category: "交通・規制",
		markdown: `## 工事に伴う通行規制

2026年2月20日〜3月15日の期間、県道118号線の一部区間で道路工事が行われます。

該当区間を通過するコースをご利用の方は、迂回ルートをご確認ください。
`,
	},
	{
		id:       "news-003",
		title:    "サイト全面リニューアルのお知らせ",
		date:     "2026-02-06",
		category: "お知らせ",
		eyecatch: &model.CMSImage{URL: "https://images.unsplash.com/photo-1517649763962-0c623066013b?w=1200", Width: 1200, Height: 630},
		markdown: `## より使いやすく、より美しく

奥久慈街道サイクリングの公式サイトをリニューアルしました。

スマートフォンでも見やすいデザインに刷新し、コース情報の検索がより便利になりました。
`,
	},
}

var renderedNews = renderNews(newsFixtures)

func renderNews(fixtures []newsFixture) []model.News {
	news := make([]model.News, 0, len(fixtures))
	for _, f := range fixtures {
		var buf bytes.Buffer
		content := f.markdown
		if err := goldmark.Convert([]byte(f.markdown), &buf); err != nil {
			log.Printf("cms: render fixture %s: %v", f.id, err)
		} else {
			content = buf.String()
		}
		news = append(news, model.News{
			ID:          f.id,
			Timestamps:  fixtureTime,
			Title:       f.title,
			PublishDate: f.date,
			Category:    f.category,
			Eyecatch:    f.eyecatch,
			Content:     content,
		})
	}
	return news
}

func FallbackNews() []model.News {
	out := make([]model.News, len(renderedNews))
	for i, n := range renderedNews {
		if n.Eyecatch != nil {
			e := *n.Eyecatch
			n.Eyecatch = &e
		}
		out[i] = n
	}
	return out
}

// FallbackNewsByID returns the fixture with the given id, or nil.
func FallbackNewsByID(id string) *model.News {
	for _, n := range FallbackNews() {
		if n.ID == id {
			return &n
		}
	}
	return nil
}

var accessFixtures = []model.Access{
	{
		ID:         "access-001",
		Timestamps: fixtureTime,
		Category:   "train",
		Title:      "電車でお越しの方",
		Items: []string{
			"JR水郡線「常陸大子駅」下車",
			"水戸駅から約1時間30分",
			"郡山駅から約1時間40分",
		},
	},
	{
		ID:         "access-002",
		Timestamps: fixtureTime,
		Category:   "car",
		Title:      "お車でお越しの方",
		Items: []string{
			"常磐自動車道「那珂IC」から約50分",
			"東北自動車道「矢板IC」から約60分",
			"無料駐車場あり（大子駅前・袋田の滝）",
		},
	},
}

func FallbackAccess() []model.Access {
	out := make([]model.Access, len(accessFixtures))
	for i, a := range accessFixtures {
		a.Items = append([]string(nil), a.Items...)
		out[i] = a
	}
	return out
}

// Courses and spots have no placeholder content: the pages render an empty
// state instead of invented routes.
func FallbackCourses() []model.Course { return []model.Course{} }

func FallbackSpots() []model.Spot { return []model.Spot{} }

var galleryFixtures = []model.GalleryImage{
	{
		ID:           "kuji-river",
		ImageURL:     "/static/gallery/kuji-river.png",
		ThumbURL:     "/static/gallery/kuji-river_thumb.png",
		LocationName: "久慈川サイクリングロード",
		MapURL:       "https://goo.gl/maps/example1",
		Seasons:      []model.Season{model.SeasonSummer},
		GridSizeHint: model.GridLarge,
	},
	{
		ID:           "fukuroda-falls",
		ImageURL:     "/static/gallery/fukuroda-falls.png",
		ThumbURL:     "/static/gallery/fukuroda-falls_thumb.png",
		LocationName: "袋田の滝",
		MapURL:       "https://goo.gl/maps/example2",
		Seasons:      []model.Season{model.SeasonAll},
	},
	{
		ID:           "okukuji-mountains",
		ImageURL:     "/static/gallery/okukuji-mountains.png",
		ThumbURL:     "/static/gallery/okukuji-mountains_thumb.png",
		LocationName: "奥久慈の山々",
		MapURL:       "https://goo.gl/maps/example3",
		Seasons:      []model.Season{model.SeasonAutumn},
	},
	{
		ID:           "ayu-grill",
		ImageURL:     "/static/gallery/ayu-grill.png",
		ThumbURL:     "/static/gallery/ayu-grill_thumb.png",
		LocationName: "道の駅 奥久慈だいご",
		MapURL:       "https://goo.gl/maps/example4",
		Seasons:      []model.Season{model.SeasonSummer, model.SeasonAutumn},
	},
	{
		ID:           "yamatsuri-cherry",
		ImageURL:     "/static/gallery/yamatsuri-cherry.png",
		ThumbURL:     "/static/gallery/yamatsuri-cherry_thumb.png",
		LocationName: "矢祭山公園",
		MapURL:       "https://goo.gl/maps/example5",
		Seasons:      []model.Season{model.SeasonSpring},
	},
	{
		ID:           "ryujin-bridge",
		ImageURL:     "/static/gallery/ryujin-bridge.png",
		ThumbURL:     "/static/gallery/ryujin-bridge_thumb.png",
		LocationName: "竜神大吊橋",
		MapURL:       "https://goo.gl/maps/example6",
		Seasons:      []model.Season{model.SeasonAll},
		GridSizeHint: model.GridLarge,
	},
}

func FallbackGallery() []model.GalleryImage {
	out := make([]model.GalleryImage, len(galleryFixtures))
	for i, g := range galleryFixtures {
		g.Seasons = append([]model.Season(nil), g.Seasons...)
		out[i] = g
	}
	return out
}

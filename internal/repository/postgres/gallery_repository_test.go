package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OkukujiBackend/internal/model"
)

var columns = []string{"id", "file_path", "thumb_path", "location_name", "map_url", "seasons", "grid_size", "view_count"}

func newMockRepo(t *testing.T) (*GalleryRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewGalleryRepository(db), mock
}

type fakeRow struct {
	values []driver.Value
}

func (f fakeRow) Scan(dest ...any) error {
	*dest[0].(*string) = f.values[0].(string)
	*dest[1].(*string) = f.values[1].(string)
	*dest[2].(*string) = f.values[2].(string)
	*dest[3].(*string) = f.values[3].(string)
	*dest[4].(*string) = f.values[4].(string)
	if err := dest[5].(*pq.StringArray).Scan(f.values[5]); err != nil {
		return err
	}
	*dest[6].(*string) = f.values[6].(string)
	*dest[7].(*int) = f.values[7].(int)
	return nil
}

func TestScanImage(t *testing.T) {
	row := fakeRow{values: []driver.Value{
		"ryujin-bridge",
		"static/gallery/ryujin-bridge.png",
		"static/gallery/ryujin-bridge_thumb.png",
		"竜神大吊橋",
		"",
		"{all,winter}",
		"large",
		42,
	}}

	got, err := scanImage(row)
	require.NoError(t, err)
	assert.Equal(t, model.GalleryImage{
		ID:           "ryujin-bridge",
		ImageURL:     "static/gallery/ryujin-bridge.png",
		ThumbURL:     "static/gallery/ryujin-bridge_thumb.png",
		LocationName: "竜神大吊橋",
		Seasons:      []model.Season{model.SeasonAll},
		GridSizeHint: model.GridLarge,
		ViewCount:    42,
	}, got)
}

func TestListGallery(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + selectColumns + ` FROM gallery_images ORDER BY id`)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("fukuroda-falls", "static/gallery/fukuroda-falls.png", "static/gallery/fukuroda-falls_thumb.png", "袋田の滝", "", "{all}", "", int64(3)).
			AddRow("kuji-river", "static/gallery/kuji-river.png", "static/gallery/kuji-river_thumb.png", "久慈川", "https://maps.example/1", "{summer,autumn}", "huge", int64(0)))

	got, err := repo.ListGallery(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "fukuroda-falls", got[0].ID)
	assert.Equal(t, []model.Season{model.SeasonAll}, got[0].Seasons)
	assert.Equal(t, 3, got[0].ViewCount)
	assert.Equal(t, []model.Season{model.SeasonSummer, model.SeasonAutumn}, got[1].Seasons)
	assert.Empty(t, got[1].GridSizeHint, "unknown grid size must be dropped")
}

func TestListGalleryQueryError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(`SELECT .* FROM gallery_images`).WillReturnError(boom)

	_, err := repo.ListGallery(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestIncreaseViewCount(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`UPDATE gallery_images SET view_count = view_count + 1 WHERE id = $1`)

	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "existing image", affected: 1},
		{name: "unknown image", affected: 0, wantErr: ErrImageNotFound},
		{name: "driver error", execErr: errors.New("deadlock")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			exp := mock.ExpectExec(updateSQL).WithArgs("kuji-river")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.IncreaseViewCount(context.Background(), "kuji-river")
			switch {
			case tt.execErr != nil:
				assert.ErrorIs(t, err, tt.execErr)
				assert.NotErrorIs(t, err, ErrImageNotFound)
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

const deleteStaleSQL = `DELETE FROM gallery_images WHERE NOT (id = ANY($1))`

func TestReplaceCatalog(t *testing.T) {
	repo, mock := newMockRepo(t)
	images := []model.GalleryImage{
		{ID: "kuji-river", ImageURL: "static/gallery/kuji-river.png", ThumbURL: "static/gallery/kuji-river_thumb.png",
			LocationName: "久慈川", Seasons: []model.Season{model.SeasonSummer}, GridSizeHint: model.GridLarge},
		{ID: "fukuroda-falls", ImageURL: "static/gallery/fukuroda-falls.png", ThumbURL: "static/gallery/fukuroda-falls_thumb.png",
			Seasons: []model.Season{model.SeasonAll}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteStaleSQL)).
		WithArgs(pq.Array([]string{"kuji-river", "fukuroda-falls"})).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(upsertImage)).
		WithArgs("kuji-river", "static/gallery/kuji-river.png", "static/gallery/kuji-river_thumb.png", "久慈川", "",
			pq.Array([]string{"summer"}), "large").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(upsertImage)).
		WithArgs("fukuroda-falls", "static/gallery/fukuroda-falls.png", "static/gallery/fukuroda-falls_thumb.png", "", "",
			pq.Array([]string{"all"}), "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceCatalog(context.Background(), images))
}

func TestReplaceCatalogEmptyClearsTable(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteStaleSQL)).
		WithArgs(pq.Array([]string{})).
		WillReturnResult(sqlmock.NewResult(0, 6))
	mock.ExpectCommit()

	require.NoError(t, repo.ReplaceCatalog(context.Background(), nil))
}

func TestReplaceCatalogRollsBackOnUpsertError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("value too long")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteStaleSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(upsertImage)).WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.ReplaceCatalog(context.Background(), []model.GalleryImage{{ID: "kuji-river"}})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "upsert image kuji-river")
}

func TestReplaceCatalogRollsBackOnDeleteError(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("permission denied")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteStaleSQL)).WillReturnError(boom)
	mock.ExpectRollback()

	err := repo.ReplaceCatalog(context.Background(), []model.GalleryImage{{ID: "kuji-river"}})
	assert.ErrorIs(t, err, boom)
}

func TestUpsertKeepsViewCount(t *testing.T) {
	assert.NotContains(t, upsertImage, "view_count")
}

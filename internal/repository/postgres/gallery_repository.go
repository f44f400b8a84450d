package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"OkukujiBackend/internal/model"
)

var ErrImageNotFound = errors.New("gallery image not found")

const schema = `
CREATE TABLE IF NOT EXISTS gallery_images (
	id            TEXT PRIMARY KEY,
	file_path     TEXT NOT NULL,
	thumb_path    TEXT NOT NULL,
	location_name TEXT NOT NULL DEFAULT '',
	map_url       TEXT NOT NULL DEFAULT '',
	seasons       TEXT[] NOT NULL DEFAULT '{}',
	grid_size     TEXT NOT NULL DEFAULT '',
	view_count    INTEGER NOT NULL DEFAULT 0
)`

// GalleryRepository stores photos imported from the local gallery folder.
// File paths are kept relative; callers prefix them with the public base URL.
type GalleryRepository struct {
	db *sql.DB
}

func NewGalleryRepository(db *sql.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// upsertImage leaves view_count alone so re-imports keep the counters.
const upsertImage = `
INSERT INTO gallery_images (id, file_path, thumb_path, location_name, map_url, seasons, grid_size)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
	file_path = excluded.file_path,
	thumb_path = excluded.thumb_path,
	location_name = excluded.location_name,
	map_url = excluded.map_url,
	seasons = excluded.seasons,
	grid_size = excluded.grid_size`

const selectColumns = `id, file_path, thumb_path, location_name, map_url, seasons, grid_size, view_count`

type scanner interface {
	Scan(dest ...any) error
}

func scanImage(row scanner) (model.GalleryImage, error) {
	var (
		img      model.GalleryImage
		seasons  pq.StringArray
		gridSize string
	)
	err := row.Scan(&img.ID, &img.ImageURL, &img.ThumbURL, &img.LocationName, &img.MapURL, &seasons, &gridSize, &img.ViewCount)
	if err != nil {
		return img, err
	}
	img.Seasons = model.ParseSeasons(seasons)
	if g, ok := model.ParseGridSize(gridSize); ok {
		img.GridSizeHint = g
	}
	return img, nil
}

func (r *GalleryRepository) ListGallery(ctx context.Context) ([]model.GalleryImage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM gallery_images ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []model.GalleryImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return images, nil
}

// IncreaseViewCount is called when a visitor opens a photo in the lightbox.
func (r *GalleryRepository) IncreaseViewCount(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE gallery_images SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrImageNotFound
	}
	return nil
}

// ReplaceCatalog makes the table match images in one transaction: rows
// missing from images are deleted, the rest are upserted. View counts of
// surviving rows are kept.
func (r *GalleryRepository) ReplaceCatalog(ctx context.Context, images []model.GalleryImage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	ids := make([]string, len(images))
	for i, img := range images {
		ids[i] = img.ID
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM gallery_images WHERE NOT (id = ANY($1))`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("delete stale images: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Printf("GalleryRepository: deleted %d stale images", n)
	}

	for _, img := range images {
		seasons := make([]string, len(img.Seasons))
		for i, s := range img.Seasons {
			seasons[i] = string(s)
		}
		_, err := tx.ExecContext(ctx, upsertImage,
			img.ID, img.ImageURL, img.ThumbURL, img.LocationName, img.MapURL, pq.Array(seasons), string(img.GridSizeHint))
		if err != nil {
			return fmt.Errorf("upsert image %s: %w", img.ID, err)
		}
	}

	return tx.Commit()
}

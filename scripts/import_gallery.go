package scripts

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"OkukujiBackend/internal/model"
)

// publicPrefix is where the router serves the gallery folder.
const publicPrefix = "static/gallery"

type CatalogWriter interface {
	ReplaceCatalog(ctx context.Context, images []model.GalleryImage) error
}

// ImportGallery syncs the gallery folder into the database. Manifest
// entries whose file is missing are skipped, and rows that are no longer in
// the manifest are removed.
func ImportGallery(ctx context.Context, w CatalogWriter, dir string) error {
	manifest, err := LoadManifest(filepath.Join(dir, ManifestFile))
	if err != nil {
		return fmt.Errorf("load manifest: %w", err)
	}
	if err := manifest.Validate(); err != nil {
		return err
	}

	images, err := prepareCatalog(dir, manifest)
	if err != nil {
		return err
	}

	log.Printf("ImportGallery: writing %d images", len(images))
	return w.ReplaceCatalog(ctx, images)
}

// prepareCatalog checks every manifest file and creates missing thumbnails.
func prepareCatalog(dir string, manifest *Manifest) ([]model.GalleryImage, error) {
	images := make([]model.GalleryImage, 0, len(manifest.Images))

	for _, e := range manifest.Images {
		log.Printf("ImportGallery: processing %s", e.File)

		original := filepath.Join(dir, e.File)
		if _, err := os.Stat(original); os.IsNotExist(err) {
			log.Printf("ImportGallery: skipping %s, file does not exist", e.File)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.File, err)
		}

		thumb := thumbName(e.File)
		thumbPath := filepath.Join(dir, thumb)
		if _, err := os.Stat(thumbPath); os.IsNotExist(err) {
			if err := compressImage(original, thumbPath); err != nil {
				return nil, fmt.Errorf("thumbnail %s: %w", e.File, err)
			}
		}

		img := model.GalleryImage{
			ID:           e.entryID(),
			ImageURL:     path.Join(publicPrefix, filepath.ToSlash(e.File)),
			ThumbURL:     path.Join(publicPrefix, filepath.ToSlash(thumb)),
			LocationName: e.Location,
			MapURL:       e.MapLink,
			Seasons:      model.ParseSeasons(e.Seasons),
		}
		if g, ok := model.ParseGridSize(e.GridSize); ok {
			img.GridSizeHint = g
		}
		images = append(images, img)
	}

	return images, nil
}

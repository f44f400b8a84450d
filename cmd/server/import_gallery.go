package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"OkukujiBackend/config"
	"OkukujiBackend/internal/repository/postgres"
	"OkukujiBackend/scripts"
)

func newImportGalleryCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import-gallery",
		Short: "Import local gallery photos into the database",
		Long: `Reads gallery.yaml from the gallery folder, creates missing thumbnails
and replaces the gallery table with the manifest contents.`,
		Example: `  okukuji import-gallery --dir ./static/gallery`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.DatabaseEnabled() {
				return errors.New("PG_HOST and PG_DBNAME are required for import-gallery")
			}
			if dir == "" {
				dir = cfg.GalleryDir
			}

			db, err := openDatabase(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := postgres.NewGalleryRepository(db)
			if err := repo.EnsureSchema(cmd.Context()); err != nil {
				return err
			}

			if err := scripts.ImportGallery(cmd.Context(), repo, dir); err != nil {
				return err
			}
			log.Printf("Gallery imported from %s", dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Gallery folder (defaults to GALLERY_DIR)")

	return cmd
}

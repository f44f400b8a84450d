package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"OkukujiBackend/config"
	"OkukujiBackend/internal/cms"
	"OkukujiBackend/internal/gallery"
	"OkukujiBackend/internal/repository/postgres"
	"OkukujiBackend/internal/router"
	"OkukujiBackend/internal/service"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Example: `  # Start on the port from PORT (default 8000)
  okukuji serve

  # Start on a custom port
  okukuji serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			var (
				content service.ContentSource
				counter service.ViewCounter
				sources []service.Source
			)

			if cfg.CMSEnabled() {
				client := cms.NewClient(cfg.CMSServiceDomain, cfg.CMSAPIKey)
				content = client
				sources = append(sources, service.Source{Name: "cms", Catalog: client})
			} else {
				log.Println("microCMS not configured, serving built-in content")
			}

			if cfg.DatabaseEnabled() {
				db, err := openDatabase(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				defer func() {
					if err := db.Close(); err != nil {
						log.Println("Error closing the database:", err)
					}
				}()

				repo := postgres.NewGalleryRepository(db)
				if err := repo.EnsureSchema(cmd.Context()); err != nil {
					return fmt.Errorf("ensure schema: %w", err)
				}
				counter = repo
				sources = append(sources, service.Source{Name: "postgres", Catalog: service.WithBaseURL(repo, cfg.BaseURL)})
			}

			gallerySvc := service.NewGalleryService(gallery.NewSelector(), counter, sources...)
			contentSvc := service.NewContentService(content)

			srv := &http.Server{
				Addr:         ":" + cfg.Port,
				Handler:      router.NewRouter(gallerySvc, contentSvc, cfg),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 30 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Printf("Server started on %s", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			select {
			case <-cmd.Context().Done():
				log.Println("Shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("graceful shutdown failed: %w", err)
				}
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")

	return cmd
}

func openDatabase(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := config.NewConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return db, nil
}

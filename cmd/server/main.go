package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "okukuji",
		Short: "Backend for the Okukuji cycling site",
		Long: `Serves news, courses, spots, access information and the seasonal
photo gallery of the Okukuji cycling site as JSON.

Content comes from microCMS when MICROCMS_SERVICE_DOMAIN and MICROCMS_API_KEY
are set and falls back to built-in content otherwise.`,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newImportGalleryCmd())

	return cmd
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}

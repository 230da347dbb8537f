package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"orrery/core/config"
	"orrery/core/logger"
	"orrery/core/storage"
	"orrery/feature/orrery"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut    string
	exportUpload bool
)

// exportCmd writes the figure JSON to a file, stdout or object storage
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the scene as Plotly figure JSON",
	Long: `Builds the scene and writes the figure (data + layout) as JSON.
With --upload the document is stored in the configured bucket under
storage.object_key. Writes to stdout unless --out or --upload is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		var client storage.Client
		if exportUpload {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				return err
			}
		}

		return runExport(cmd.Context(), cmd.OutOrStdout(), exportOut, client, cfg.Storage, logg)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write the figure to this file instead of stdout")
	exportCmd.Flags().BoolVar(&exportUpload, "upload", false, "also upload the figure to object storage")
	RootCmd.AddCommand(exportCmd)
}

// runExport encodes the figure and delivers it. A nil client skips the upload.
func runExport(ctx context.Context, stdout io.Writer, out string, client storage.Client, cfg storage.Config, logg *zap.Logger) error {
	cat := orrery.SolarSystem()
	if err := orrery.Validate(cat); err != nil {
		return err
	}

	data, err := orrery.EncodeFigure(orrery.BuildScene(cat))
	if err != nil {
		return err
	}

	if out != "" {
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		logg.Info("Figure written", zap.String("path", out), zap.Int("bytes", len(data)))
	} else if client == nil {
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	}

	if client != nil {
		info, err := storage.PutJSON(ctx, client, cfg.Bucket, cfg.ObjectKey, data)
		if err != nil {
			return err
		}
		logg.Info("Figure uploaded",
			zap.String("bucket", info.Bucket),
			zap.String("key", info.Key),
			zap.Int64("size", info.Size),
		)
	}
	return nil
}

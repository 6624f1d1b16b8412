package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/club19-dev/ledgerlift/internal/config"
	"github.com/club19-dev/ledgerlift/internal/export"
	"github.com/club19-dev/ledgerlift/internal/id"
	"github.com/club19-dev/ledgerlift/internal/ingest"
	"github.com/club19-dev/ledgerlift/internal/model"
	"github.com/club19-dev/ledgerlift/internal/pipeline"
	"github.com/club19-dev/ledgerlift/internal/runlog"
)

func newImportCommand() *cobra.Command {
	var sources []string
	var outDir string
	var configPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Normalize legacy ledgers into import-ready JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(sources, outDir, configPath)
		},
	}

	cmd.Flags().StringArrayVar(&sources, "source", nil, "ledger to import as tag=path (repeatable)")
	_ = cmd.MarkFlagRequired("source")
	cmd.Flags().StringVar(&outDir, "out", "data/legacy-import", "output directory")
	cmd.Flags().StringVar(&configPath, "config", "ledgerlift.yaml", "normalization config (built-in defaults if absent)")

	return cmd
}

func runImport(specs []string, outDir, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	registry := ingest.DefaultRegistry()
	var srcs []ingest.Source
	var tags []string
	for _, spec := range specs {
		tag, path, ok := strings.Cut(spec, "=")
		if !ok || tag == "" || path == "" {
			return fmt.Errorf("invalid --source %q, want tag=path", spec)
		}
		src, err := registry.Open(path, model.Source(tag))
		if err != nil {
			return fmt.Errorf("source %s: %w", tag, err)
		}
		srcs = append(srcs, src)
		tags = append(tags, tag)
	}

	res, err := pipeline.Run(cfg, id.UUID{}, srcs...)
	if err != nil {
		return err
	}

	if err := export.Write(outDir, res); err != nil {
		return err
	}

	flaggedSuppliers, flaggedClients := res.ReviewCounts()
	entry := runlog.Entry{
		Timestamp:        time.Now().UTC(),
		Sources:          strings.Join(tags, ";"),
		Rows:             len(res.Trades),
		Suppliers:        len(res.Suppliers),
		Clients:          len(res.Clients),
		FlaggedSuppliers: flaggedSuppliers,
		FlaggedClients:   flaggedClients,
	}
	if err := runlog.Append(outDir, []runlog.Entry{entry}); err != nil {
		return err
	}

	printSummary(res, srcs, outDir)
	return nil
}

// loadConfig falls back to the built-in tables when no config file has
// been initialized.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func printSummary(res *pipeline.Result, srcs []ingest.Source, outDir string) {
	flaggedSuppliers, flaggedClients := res.ReviewCounts()

	fmt.Printf("Imported %d trades\n", len(res.Trades))
	for _, src := range srcs {
		fmt.Printf("  %s: %d rows\n", src.Tag(), res.SourceCounts[src.Tag()])
	}
	fmt.Printf("Suppliers: %d (%d require review)\n", len(res.Suppliers), flaggedSuppliers)
	fmt.Printf("Clients: %d (%d require review)\n", len(res.Clients), flaggedClients)

	if first, last := res.DateRange(); !first.IsZero() {
		fmt.Printf("Date range: %s to %s\n", first, last)
	}
	fmt.Printf("Output written to %s\n", outDir)
}

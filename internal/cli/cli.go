package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"webui-strings/internal/catalog"
	"webui-strings/internal/codegen"
	"webui-strings/internal/config"
	"webui-strings/internal/gate"
	"webui-strings/internal/reconcile"
	"webui-strings/internal/resource"
	"webui-strings/internal/scanner"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "webui-strings",
		Short: "Reconcile frontend UI strings against the translation catalog",
		Long: `Build-step tool that matches localizable strings discovered in a frontend
source tree against the canonical translation catalog and generates the
C++ string table consumed by native code.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(generateCmd(cfg))
	rootCmd.AddCommand(checkCmd(cfg))
	rootCmd.AddCommand(fixCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <frontend-dir>",
		Short: "Scan, reconcile, and generate the string table artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rootGenDir, _ := cmd.Flags().GetString("root_gen_dir")
			outputHeader, _ := cmd.Flags().GetString("output_header")
			outputCC, _ := cmd.Flags().GetString("output_cc")
			catalogPath, _ := cmd.Flags().GetString("catalog")
			return runGenerate(args[0], catalogPath, rootGenDir, outputHeader, outputCC, cfg)
		},
	}

	cmd.Flags().String("root_gen_dir", cfg.RootGenDir, "Root directory for generated files")
	cmd.Flags().String("output_header", cfg.OutputHeader, "Declaration artifact path, relative to root_gen_dir")
	cmd.Flags().String("output_cc", cfg.OutputCC, "Definition artifact path, relative to root_gen_dir")
	cmd.Flags().String("catalog", cfg.CatalogPath, "Translation catalog file")

	return cmd
}

func checkCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <frontend-dir>",
		Short: "Reconcile without generating, for CI checks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog")
			ctx, cancel := setupContext()
			defer cancel()
			_, _, err := reconcileTree(ctx, args[0], catalogPath, cfg)
			return err
		},
	}

	cmd.Flags().String("catalog", cfg.CatalogPath, "Translation catalog file")

	return cmd
}

func fixCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix <frontend-dir>",
		Short: "Rewrite the catalog to match the strings found in source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogPath, _ := cmd.Flags().GetString("catalog")
			return runFix(args[0], catalogPath, cfg)
		},
	}

	cmd.Flags().String("catalog", cfg.CatalogPath, "Translation catalog file")

	return cmd
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Warn().Msg("Received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// reconcileTree runs scan, catalog load, diff, and the build gate. It returns
// the discovered map and diff result on success, an error when the gate
// blocks or an input cannot be read.
func reconcileTree(ctx context.Context, frontendDir, catalogPath string, cfg *config.Config) (*resource.StringMap, reconcile.Result, error) {
	discovered, files, err := scanner.NewWalker(cfg.WorkerCount).Scan(ctx, frontendDir)
	if err != nil {
		return nil, reconcile.Result{}, fmt.Errorf("scan frontend tree: %w", err)
	}
	log.Info().Int("files", files).Int("strings", discovered.Len()).Msg("Scan complete")

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, reconcile.Result{}, err
	}

	diffs := reconcile.Diff(discovered, cat)
	decision := gate.Evaluate(diffs)

	if !decision.Proceed {
		log.Error().Msg("Catalog is out of sync with source:\n" + decision.Diagnostics)
		return nil, diffs, errors.New("unresolved catalog diffs")
	}
	if decision.Diagnostics != "" {
		// Stale entries only: report but do not fail.
		log.Warn().Msg(decision.Diagnostics)
	}

	return discovered, diffs, nil
}

// runGenerate handles the `generate` command.
func runGenerate(frontendDir, catalogPath, rootGenDir, outputHeader, outputCC string, cfg *config.Config) error {
	ctx, cancel := setupContext()
	defer cancel()

	final, _, err := reconcileTree(ctx, frontendDir, catalogPath, cfg)
	if err != nil {
		return err
	}

	gen := &codegen.Generator{
		RootGenDir:   rootGenDir,
		HeaderPath:   outputHeader,
		CCPath:       outputCC,
		IDHeaderName: cfg.IDHeaderName,
	}
	if err := gen.Generate(ctx, final); err != nil {
		return fmt.Errorf("generate string table: %w", err)
	}

	return nil
}

// runFix handles the `fix` command: it rewrites the catalog so that a
// following generate run passes the gate.
func runFix(frontendDir, catalogPath string, cfg *config.Config) error {
	ctx, cancel := setupContext()
	defer cancel()

	discovered, _, err := scanner.NewWalker(cfg.WorkerCount).Scan(ctx, frontendDir)
	if err != nil {
		return fmt.Errorf("scan frontend tree: %w", err)
	}

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		log.Warn().Str("path", catalogPath).Msg("Catalog file missing, starting from an empty catalog")
		cat = catalog.Empty()
	}

	diffs := reconcile.Diff(discovered, cat)
	if len(diffs.ToAdd) == 0 && len(diffs.ToModify) == 0 && len(diffs.ToRemove) == 0 {
		log.Info().Msg("Catalog already matches source")
		return nil
	}

	// Reusing an ID key for a different string invalidates its existing
	// translations. The text is updated here so the build can go green,
	// but the key ought to be renamed instead.
	for _, m := range diffs.ToModify {
		log.Warn().
			Str("id_key", m.IDKey).
			Str("old", m.CatalogText).
			Str("new", m.SourceText).
			Msg("ID key reused for a different string; existing translations are now stale")
	}

	entries := make(map[string]string, discovered.Len())
	for _, idKey := range discovered.Keys() {
		s, _ := discovered.Get(idKey)
		entries[idKey] = s.Text
	}

	if err := catalog.Save(catalogPath, entries); err != nil {
		return err
	}

	log.Info().
		Int("added", len(diffs.ToAdd)).
		Int("modified", len(diffs.ToModify)).
		Int("removed", len(diffs.ToRemove)).
		Str("path", catalogPath).
		Msg("Catalog updated")
	return nil
}

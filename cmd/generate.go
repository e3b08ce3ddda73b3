package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/xll-gen/appfiles-gen/internal/config"
	"github.com/xll-gen/appfiles-gen/internal/generator"
	"github.com/xll-gen/appfiles-gen/internal/scanner"
	"github.com/xll-gen/appfiles-gen/internal/ui"
	applog "github.com/xll-gen/appfiles-gen/pkg/log"
)

// generateFlags are the optional flags accepted next to the positional arguments.
type generateFlags struct {
	configPath  string
	baseDir     string
	onCollision string
	dryRun      bool
	logLevel    string
	logFile     string
}

// runGenerate resolves the configuration, scans the source directory and
// writes both artifacts.
//
// Parameters:
//   - out: Where the summary is printed.
//   - errOut: Where warnings are printed.
//   - args: Positional component, source dir, header path and source path.
//   - f: Optional flags.
//
// Returns:
//   - error: An error if configuration, scanning or writing fails.
func runGenerate(out, errOut io.Writer, args []string, f generateFlags) error {
	cfg, err := loadConfig(args, f)
	if err != nil {
		return err
	}

	if err := applog.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer applog.Close()

	slog.Debug("resolved configuration",
		"component", cfg.Component,
		"source_dir", cfg.SourceDir,
		"header", cfg.Header,
		"source", cfg.Source,
		"on_collision", cfg.OnCollision)

	assets, err := scanner.Scan(cfg.Component, cfg.SourceDir)
	if err != nil {
		return err
	}

	if collisions := scanner.DetectCollisions(assets); len(collisions) > 0 {
		if cfg.OnCollision == config.OnCollisionError {
			return &scanner.CollisionError{Collisions: collisions}
		}
		for _, c := range collisions {
			slog.Warn("symbol collision", "symbol", c.Symbol, "uris", c.URIs)
			ui.PrintWarning(errOut, "collision", c.String())
		}
	}

	if f.dryRun {
		printAssets(out, assets)
		return nil
	}

	res, err := generator.Generate(generator.Options{
		HeaderPath: cfg.Header,
		SourcePath: cfg.Source,
	}, assets)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Generated %d symbols from %s into %s and %s.\n", res.Count, cfg.SourceDir, res.HeaderPath, res.SourcePath)
	fmt.Fprintln(out, "Done.")
	return nil
}

// loadConfig layers defaults, the config file, flags and positional
// arguments, in increasing precedence, and resolves every path.
func loadConfig(args []string, f generateFlags) (*config.Config, error) {
	if len(args) > 4 {
		return nil, fmt.Errorf("too many arguments: expected at most 4, got %d", len(args))
	}

	baseDir := f.baseDir
	if baseDir == "" {
		dir, err := config.ExecutableDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	baseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base directory %s: %w", baseDir, err)
	}

	cfgPath := f.configPath
	optional := cfgPath == ""
	if optional {
		cfgPath = filepath.Join(baseDir, config.FileName)
	} else if cfgPath, err = filepath.Abs(cfgPath); err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", f.configPath, err)
	}
	cfg, err := config.Load(cfgPath, optional)
	if err != nil {
		return nil, err
	}

	switch {
	case f.baseDir != "":
		cfg.BaseDir = baseDir
	case cfg.BaseDir == "":
		cfg.BaseDir = baseDir
	case !filepath.IsAbs(cfg.BaseDir):
		cfg.BaseDir = filepath.Join(filepath.Dir(cfgPath), cfg.BaseDir)
	}

	override := config.Config{
		OnCollision: f.onCollision,
		Logging:     config.LoggingConfig{Level: f.logLevel, Path: f.logFile},
	}
	positional := []*string{&override.Component, &override.SourceDir, &override.Header, &override.Source}
	for i, a := range args {
		*positional[i] = a
	}
	cfg.Merge(override)

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	config.Resolve(cfg)
	if cfg.Header == cfg.Source {
		return nil, fmt.Errorf("header and source resolve to the same file: %s", cfg.Header)
	}
	return cfg, nil
}

func printAssets(w io.Writer, assets []scanner.Asset) {
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		rows = append(rows, []string{a.URI, a.ContentType, a.SymbolBase})
	}
	ui.PrintTable(w, []string{"URI", "CONTENT TYPE", "SYMBOL"}, rows)
	fmt.Fprintf(w, "%d entries (dry run, nothing written)\n", len(assets))
}

// printError reports a failed run. Collisions are listed one per line.
func printError(w io.Writer, err error) {
	var ce *scanner.CollisionError
	if errors.As(err, &ce) {
		ui.PrintError(w, "collision", fmt.Sprintf("%d symbol(s) shared by several files", len(ce.Collisions)))
		for _, c := range ce.Collisions {
			fmt.Fprintf(w, "    %s\n", c.String())
		}
		return
	}
	ui.PrintError(w, "error", err.Error())
}

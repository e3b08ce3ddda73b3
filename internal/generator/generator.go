package generator

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xll-gen/appfiles-gen/internal/scanner"
	"github.com/xll-gen/appfiles-gen/internal/templates"
)

const (
	// RowType is the C struct name of one table row.
	RowType = "app_file_t"
	// Table is the C name of the table; its length is Table + "_count".
	Table = "app_files"
)

// Options contains the destinations of the two generated artifacts.
type Options struct {
	// HeaderPath is where the declarations artifact is written.
	HeaderPath string
	// SourcePath is where the definitions artifact is written.
	SourcePath string
}

// Result describes a completed generation run.
type Result struct {
	Count      int
	HeaderPath string
	SourcePath string
}

// tableData is the template input shared by both artifacts.
type tableData struct {
	Assets     []scanner.Asset
	HeaderName string
	RowType    string
	Table      string
}

// Generate renders the declarations and definitions artifacts for assets and
// writes them to the paths in opts.
//
// Both artifacts are rendered before either is written, and each is written
// through a temporary file, so a failure never leaves a half-written file at
// the destination.
//
// Parameters:
//   - opts: The output paths.
//   - assets: The asset table in emission order.
//
// Returns:
//   - *Result: The number of rows and the paths written.
//   - error: An error naming the artifact that could not be rendered or written.
func Generate(opts Options, assets []scanner.Asset) (*Result, error) {
	data := tableData{
		Assets:     assets,
		HeaderName: filepath.Base(opts.HeaderPath),
		RowType:    RowType,
		Table:      Table,
	}

	header, err := renderTemplate(templates.Header, data, GetCommonFuncMap())
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", opts.HeaderPath, err)
	}
	source, err := renderTemplate(templates.Source, data, GetCommonFuncMap())
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", opts.SourcePath, err)
	}

	if err := writeFiles([]pendingFile{
		{path: opts.HeaderPath, content: header},
		{path: opts.SourcePath, content: source},
	}); err != nil {
		return nil, err
	}
	slog.Info("generated artifacts", "header", opts.HeaderPath, "source", opts.SourcePath, "entries", len(assets))

	return &Result{
		Count:      len(assets),
		HeaderPath: opts.HeaderPath,
		SourcePath: opts.SourcePath,
	}, nil
}

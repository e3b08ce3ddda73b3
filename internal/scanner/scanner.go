package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SymbolPrefix is prepended to every symbol base. It matches the names the
// firmware build gives to files embedded from a component directory.
const SymbolPrefix = "_binary_components_"

// Asset is one file discovered under the source directory.
type Asset struct {
	// RelPath is the slash-separated path relative to the lexical parent of
	// the source directory. It only feeds the symbol name.
	RelPath string
	// URI is the slash-separated path relative to the source directory,
	// prefixed with "/".
	URI string
	// SymbolBase is the identifier stem shared by the two boundary symbols.
	SymbolBase string
	// ContentType is the MIME type chosen from the file extension.
	ContentType string
}

// StartSymbol returns the name of the symbol marking the first byte of the asset.
func (a Asset) StartSymbol() string {
	return a.SymbolBase + "_start"
}

// EndSymbol returns the name of the symbol marking one past the last byte of the asset.
func (a Asset) EndSymbol() string {
	return a.SymbolBase + "_end"
}

var sanitizer = strings.NewReplacer("/", "_", ".", "_", "-", "_")

// Sanitize replaces '/', '.' and '-' with '_'. No other characters are touched.
func Sanitize(s string) string {
	return sanitizer.Replace(s)
}

// SymbolBase derives the boundary symbol stem for a file of the given component.
func SymbolBase(component, relPath string) string {
	return SymbolPrefix + Sanitize(component) + "_" + Sanitize(relPath)
}

// Scan walks sourceDir recursively and returns one Asset per non-directory
// entry, in lexical walk order.
//
// A source directory that does not exist yields no assets. Every other
// filesystem error aborts the scan.
//
// Parameters:
//   - component: The logical component name used in symbol names.
//   - sourceDir: The directory to scan. A trailing separator makes the
//     directory itself the root for symbol names instead of its parent.
//
// Returns:
//   - []Asset: The discovered assets.
//   - error: An error naming the path that could not be read.
func Scan(component, sourceDir string) ([]Asset, error) {
	root := filepath.Clean(sourceDir)

	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("source directory does not exist", "dir", root)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat source directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", root)
	}

	// The walk follows a symlinked source directory; names stay lexical.
	walkRoot := root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		walkRoot = resolved
	}
	prefix, err := filepath.Rel(lexicalParent(sourceDir), root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
	}

	var assets []Asset
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			// Links to directories are not descended into; dangling links
			// are still listed.
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				return nil
			}
		}

		uriPath, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s against %s: %w", path, walkRoot, err)
		}
		asset := newAsset(component, prefix, uriPath)
		slog.Debug("discovered asset", "uri", asset.URI, "symbol", asset.SymbolBase, "type", asset.ContentType)
		assets = append(assets, asset)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// newAsset builds an Asset from its path below the source directory.
// prefix is the source directory relative to its lexical parent.
func newAsset(component, prefix, uriPath string) Asset {
	relPath := toSlash(filepath.Join(prefix, uriPath))
	return Asset{
		RelPath:     relPath,
		URI:         "/" + toSlash(uriPath),
		SymbolBase:  SymbolBase(component, relPath),
		ContentType: ContentType(filepath.Base(uriPath)),
	}
}

// lexicalParent mirrors dirname on the path as written: "web/" has parent
// "web", "web" has parent ".".
func lexicalParent(dir string) string {
	if dir == "" {
		return "."
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return filepath.Clean(dir)
	}
	return filepath.Dir(dir)
}

// toSlash normalizes both separators so URIs never carry a backslash, even
// when a Windows path reaches a non-Windows host.
func toSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

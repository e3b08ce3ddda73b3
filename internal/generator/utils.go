package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/uuid"
	"github.com/xll-gen/appfiles-gen/internal/templates"
)

// renderTemplate loads a template, parses it with the provided funcMap, and executes it into memory.
func renderTemplate(tmplName string, data interface{}, funcMap template.FuncMap) ([]byte, error) {
	tmplContent, err := templates.Get(tmplName)
	if err != nil {
		return nil, err
	}

	// If funcMap is nil, use empty map
	if funcMap == nil {
		funcMap = template.FuncMap{}
	}

	t, err := template.New(tmplName).Funcs(funcMap).Parse(tmplContent)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pendingFile struct {
	path    string
	content []byte
	tmp     string
}

// writeFiles stages every file as a temporary sibling and then renames them
// into place. Temporaries left over from a failure are removed.
func writeFiles(files []pendingFile) (err error) {
	defer func() {
		if err == nil {
			return
		}
		for _, f := range files {
			if f.tmp != "" {
				os.Remove(f.tmp)
			}
		}
	}()

	for i := range files {
		f := &files[i]
		tmp := filepath.Join(filepath.Dir(f.path), "."+filepath.Base(f.path)+"."+uuid.NewString()+".tmp")
		if err := os.WriteFile(tmp, f.content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
		f.tmp = tmp
	}

	for i := range files {
		f := &files[i]
		if err := os.Rename(f.tmp, f.path); err != nil {
			return fmt.Errorf("failed to replace %s: %w", f.path, err)
		}
		f.tmp = ""
	}
	return nil
}

package templates

import (
	"embed"
	"fmt"
)

// Header and Source name the two artifact templates.
const (
	Header = "app_files.h.tmpl"
	Source = "app_files.c.tmpl"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the specified template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

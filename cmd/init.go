package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/xll-gen/appfiles-gen/internal/config"
	"github.com/xll-gen/appfiles-gen/internal/templates"
	"github.com/xll-gen/appfiles-gen/internal/ui"
)

var forceInit bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter appfiles.yaml with the default settings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		return runInit(cmd.OutOrStdout(), dir, forceInit)
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// runInit writes a config file holding the default settings into dir.
//
// Parameters:
//   - out: Where progress is printed.
//   - dir: The directory to write appfiles.yaml into. It must exist.
//   - force: Overwrite an existing file.
//
// Returns:
//   - error: An error if the file exists (and force is false) or cannot be written.
func runInit(out io.Writer, dir string, force bool) error {
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	defaults := &config.Config{}
	config.ApplyDefaults(defaults)

	if err := generateFileFromTemplate("appfiles.yaml.tmpl", path, defaults); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	ui.PrintSuccess(out, "created", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  put your static files under %s\n", filepath.Join(dir, defaults.SourceDir))
	fmt.Fprintln(out, "  appfiles-gen --base-dir "+dir)
	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) error {
	content, err := templates.Get(tmplName)
	if err != nil {
		return err
	}
	t, err := template.New(tmplName).Parse(content)
	if err != nil {
		return err
	}
	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}

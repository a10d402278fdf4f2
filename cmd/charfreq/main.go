// Package main provides the CLI entrypoint for charfreq.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/charfreq/internal/charset"
	"github.com/verte-zerg/charfreq/internal/config"
	"github.com/verte-zerg/charfreq/internal/model"
	"github.com/verte-zerg/charfreq/internal/report"
	"github.com/verte-zerg/charfreq/internal/tally"
	"github.com/verte-zerg/charfreq/internal/tui"
)

const longHelp = `Count character frequencies.

Reads the specified files and counts how often each character occurs,
case-insensitively, then prints a ranked table filtered by character class.

The --chars spec is "all" or a +-joined combination of named classes:
  symbols   ASCII punctuation !"#$%& etc.
  digits    0123456789
  letters   A-Z, a-z
  all       every character observed in the input

Counts for symbols and digits are shown by default.`

var (
	rootChars       string
	rootInteractive bool
)

// errNoInputFiles marks the help-on-no-arguments exit; the help text has
// already been printed, so main must not report it again.
var errNoInputFiles = errors.New("no input files")

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoInputFiles) {
			logErrf("Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "charfreq [flags] file [file2 ...]",
		Short:         "Count character frequencies in text files",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE:          runRootCmd,
	}

	rootCmd.Flags().StringVar(&rootChars, "chars", charset.DefaultSpec, "character classes to display (all, or +-joined symbols/digits/letters)")
	rootCmd.Flags().BoolVar(&rootInteractive, "interactive", false, "browse results in an interactive table")

	rootCmd.AddCommand(newClassesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if err := cmd.Help(); err != nil {
			return err
		}
		return errNoInputFiles
	}

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "chars", &rootChars, fileCfg.Report.Chars)
	applyBoolConfig(cmd, "interactive", &rootInteractive, fileCfg.Report.Interactive)

	cfg := model.Config{
		Chars:       rootChars,
		Files:       args,
		Interactive: rootInteractive,
	}

	hist, err := tally.CountFiles(cfg.Files)
	if err != nil {
		return err
	}
	rows, err := report.BuildRows(hist, cfg.Chars)
	if err != nil {
		return err
	}

	if cfg.Interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("--interactive requires a terminal")
		}
		program := tea.NewProgram(tui.NewModel(rows, hist.Total()), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	}

	return report.Render(cmd.OutOrStdout(), rows, hist.Total())
}

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List named character classes",
		Args:  cobra.NoArgs,
		RunE:  runClassesCmd,
	}
}

func runClassesCmd(cmd *cobra.Command, _ []string) error {
	for _, class := range charset.Classes() {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", class.Name, class.Members); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# charfreq configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# chars = %q      # Character classes to display
# interactive = false        # Browse results in an interactive table
`, charset.DefaultSpec)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

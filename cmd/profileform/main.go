// Package main provides the CLI entrypoint for profileform.
package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/profileform/internal/config"
	"github.com/verte-zerg/profileform/internal/form"
	"github.com/verte-zerg/profileform/internal/i18n"
	"github.com/verte-zerg/profileform/internal/logging"
	"github.com/verte-zerg/profileform/internal/model"
	"github.com/verte-zerg/profileform/internal/prompt"
	"github.com/verte-zerg/profileform/internal/statestore"
	"github.com/verte-zerg/profileform/internal/tui"
)

const (
	defaultLocale = i18n.DefaultLocale
	defaultAccent = "#C89A3A"
	defaultFormat = "text"
)

var (
	rootLocale  string
	rootAccent  string
	rootLogFile string
	rootDebug   bool

	summaryName      string
	summaryAge       int
	summaryGender    string
	summarySubscribe bool
	summaryFormat    string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "profileform",
		Short:         "Terminal profile form",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runFormCmd,
	}

	rootCmd.PersistentFlags().StringVar(&rootLocale, "lang", defaultLocale, "display language ("+strings.Join(i18n.Locales(), ", ")+")")
	rootCmd.PersistentFlags().StringVar(&rootAccent, "accent", defaultAccent, "accent color")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "log debug events")

	rootCmd.AddCommand(newPromptCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfig merges the config file under the flags the user did not set.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &rootLocale, fileCfg.Form.Locale)
	applyStringConfig(cmd, "accent", &rootAccent, fileCfg.Form.Accent)
	applyStringConfig(cmd, "log-file", &rootLogFile, fileCfg.Log.File)
	applyBoolConfig(cmd, "debug", &rootDebug, fileCfg.Log.Debug)

	cfg := model.Config{
		Locale:  rootLocale,
		Accent:  rootAccent,
		LogFile: rootLogFile,
		Debug:   rootDebug,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runFormCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("profileform needs a terminal; use `profileform summary` for scripted use")
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	st, err := statestore.Open()
	if err != nil {
		return fmt.Errorf("failed to open state store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close state store", zap.Error(cerr))
		}
	}()

	m := tui.NewModel(cfg, st, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newPromptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill the form question by question",
		Args:  cobra.NoArgs,
		RunE:  runPromptCmd,
	}
}

func runPromptCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	cat := i18n.Lookup(cfg.Locale)
	asker := prompt.NewSurveyAsker(os.Stdin, os.Stdout, os.Stderr)
	_, out, err := prompt.Run(asker, cat)
	if err != nil {
		return err
	}
	logger.Info("form submitted", zap.Int("age", out.Snapshot.Age), zap.Stringer("gender", out.Snapshot.Gender))
	return writeSummary(cmd, out.Snapshot, cat, defaultFormat)
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Submit the form without a UI and print the summary",
		Args:  cobra.NoArgs,
		RunE:  runSummaryCmd,
	}
	cmd.Flags().StringVar(&summaryName, "name", "", "name")
	cmd.Flags().IntVar(&summaryAge, "age", form.DefaultAge, "age (clamped to 1-100)")
	cmd.Flags().StringVar(&summaryGender, "gender", form.Male.String(), "male or female")
	cmd.Flags().BoolVar(&summarySubscribe, "subscribe", false, "subscribe to the newsletter")
	cmd.Flags().StringVar(&summaryFormat, "format", defaultFormat, "output format (text, yaml, toml)")
	return cmd
}

func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gender, err := form.ParseGender(summaryGender)
	if err != nil {
		return fmt.Errorf("invalid --gender: %w", err)
	}
	if err := validateFormat(summaryFormat); err != nil {
		return err
	}

	cat := i18n.Lookup(cfg.Locale)
	_, out := form.Replay(
		form.SetName{Text: summaryName},
		form.SetAge{Value: summaryAge},
		form.SetGender{Value: gender},
		form.SetSubscribed{Value: summarySubscribe},
		form.Submit{},
	)
	if err := out.Err(); err != nil {
		return fmt.Errorf("%s: %w", cat.Text(i18n.ErrorName), err)
	}
	return writeSummary(cmd, out.Snapshot, cat, summaryFormat)
}

func writeSummary(cmd *cobra.Command, snap form.Snapshot, cat i18n.Catalog, format string) error {
	var data []byte
	switch format {
	case "yaml":
		out, err := yaml.Marshal(snap)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		data = out
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(snap); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		data = buf.Bytes()
	default:
		data = []byte(tui.FormatSummary(form.BuildSummary(snap, cat)) + "\n")
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

func ensureConfigFile(path string) error {
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
	return fmt.Sprintf(`# profileform configuration
# Uncomment a value to enable it. CLI flags override config values.

[form]
# locale = %q             # Display language (%s)
# accent = %q        # Accent color

[log]
# file = %q
# debug = false
`,
		defaultLocale,
		strings.Join(i18n.Locales(), ", "),
		defaultAccent,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if !i18n.Supported(cfg.Locale) {
		return fmt.Errorf("--lang %q is not supported (available: %s)", cfg.Locale, strings.Join(i18n.Locales(), ", "))
	}
	if strings.TrimSpace(cfg.Accent) == "" {
		return fmt.Errorf("--accent must not be empty")
	}
	return nil
}

func validateFormat(format string) error {
	switch format {
	case "text", "yaml", "toml":
		return nil
	default:
		return fmt.Errorf("--format must be one of text, yaml, toml")
	}
}

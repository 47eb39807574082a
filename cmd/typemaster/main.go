// Package main provides the CLI entrypoint for typemaster.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typemaster/internal/config"
	"github.com/verte-zerg/typemaster/internal/engine"
	"github.com/verte-zerg/typemaster/internal/generator"
	"github.com/verte-zerg/typemaster/internal/logger"
	"github.com/verte-zerg/typemaster/internal/model"
	"github.com/verte-zerg/typemaster/internal/stats"
	"github.com/verte-zerg/typemaster/internal/store"
	"github.com/verte-zerg/typemaster/internal/tui"
	"github.com/verte-zerg/typemaster/internal/vocab"
)

const (
	defaultMode      = string(model.ModeWords)
	defaultTimeLimit = 60
	defaultWords     = model.DefaultWordCount
	debugEnv         = "TYPEMASTER_DEBUG"
)

var (
	practiceMode        string
	practiceTime        int
	practiceWords       int
	practiceCustomVocab bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typemaster",
		Short:         "Timed typing-speed practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&practiceMode, "mode", defaultMode, "text mode: words, programming or quotes")
	flags.IntVar(&practiceTime, "time", defaultTimeLimit, "time limit in seconds")
	flags.IntVar(&practiceWords, "words", defaultWords, "words per text (words and programming modes)")
	flags.BoolVar(&practiceCustomVocab, "custom-vocab", false, "use imported vocabulary where available")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVocabCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadPracticeConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := openDebugLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	eng, err := newEngine(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer eng.Close()

	m := tui.NewModel(eng, log)
	defer m.Close()
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if result := m.Result(); result.Status == model.StatusFinished {
		if err := stats.RenderResult(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return nil
}

// loadPracticeConfig overlays the config file onto unchanged flags and
// validates the result.
func loadPracticeConfig(cmd *cobra.Command) (model.Config, config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyIntConfig(cmd, "time", &practiceTime, fileCfg.Practice.TimeLimit)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyBoolConfig(cmd, "custom-vocab", &practiceCustomVocab, fileCfg.Practice.CustomVocab)

	cfg, err := buildConfig(practiceMode, practiceTime, practiceWords, practiceCustomVocab)
	if err != nil {
		return model.Config{}, config.FileConfig{}, err
	}
	return cfg, fileCfg, nil
}

func buildConfig(mode string, timeLimit, words int, customVocab bool) (model.Config, error) {
	parsed, err := model.ParseMode(mode)
	if err != nil {
		return model.Config{}, fmt.Errorf("--mode: %w", err)
	}
	cfg := model.Config{
		Mode:        parsed,
		TimeLimit:   timeLimit,
		Words:       words,
		CustomVocab: customVocab,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func validateConfig(cfg model.Config) error {
	if cfg.TimeLimit <= 0 {
		return fmt.Errorf("--time must be > 0")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	return nil
}

// newEngine builds the vocabulary set, generator and engine for cfg.
func newEngine(ctx context.Context, cfg model.Config, log *logger.Logger) (*engine.Engine, error) {
	set := vocab.Builtin()
	if cfg.CustomVocab {
		custom, err := loadCustomVocab(ctx)
		if err != nil {
			return nil, err
		}
		set = vocab.Overlay(set, custom)
		for _, mode := range model.Modes {
			if len(custom[mode]) > 0 {
				log.Info("using imported vocabulary", logger.F("mode", mode), logger.F("entries", len(custom[mode])))
			}
		}
	}
	gen, err := generator.New(set, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build generator: %w", err)
	}
	return engine.New(gen,
		engine.WithLogger(log),
		engine.WithMode(cfg.Mode),
		engine.WithTimeLimit(cfg.TimeLimit),
		engine.WithWordCount(cfg.Words),
	), nil
}

func loadCustomVocab(ctx context.Context) (map[model.Mode][]string, error) {
	var custom map[model.Mode][]string
	err := withStore(ctx, func(ctx context.Context, st *store.Store) error {
		var err error
		custom, err = st.LoadCustom(ctx)
		if err != nil {
			return fmt.Errorf("failed to load custom vocabulary: %w", err)
		}
		return nil
	})
	return custom, err
}

// openDebugLogger logs to the debug file when TYPEMASTER_DEBUG is set; the
// terminal belongs to the TUI otherwise.
func openDebugLogger() (*logger.Logger, func(), error) {
	if strings.TrimSpace(os.Getenv(debugEnv)) == "" {
		return logger.Discard(), func() {}, nil
	}
	path := config.DefaultDebugLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	closeFn := func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}
	return logger.New(file, logger.LevelDebug), closeFn, nil
}

func serverLogLevel() logger.Level {
	if strings.TrimSpace(os.Getenv(debugEnv)) != "" {
		return logger.LevelDebug
	}
	return logger.LevelInfo
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

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
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
	return fmt.Sprintf(`# typemaster configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q          # words, programming or quotes
# time = %d                # Time limit in seconds
# words = %d              # Words per text
# custom-vocab = false     # Use imported vocabulary (typemaster vocab import)

[server]
# addr = %q     # Listen address for typemaster serve
`,
		defaultMode,
		defaultTimeLimit,
		defaultWords,
		defaultAddr,
	)
}

func writeLine(w io.Writer, format string, args ...any) error {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Package main provides the CLI entrypoint for starbar.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/starbar/internal/config"
	"github.com/verte-zerg/starbar/internal/counter"
	"github.com/verte-zerg/starbar/internal/debounce"
	"github.com/verte-zerg/starbar/internal/logging"
	"github.com/verte-zerg/starbar/internal/model"
	"github.com/verte-zerg/starbar/internal/simulate"
	"github.com/verte-zerg/starbar/internal/tui"
)

const (
	defaultNormalizeEvery = 5 * time.Second
)

var (
	configPath     string
	logFile        string
	verbose        bool
	clicksPerStar  string
	debounceEvery  time.Duration
	normalizeEvery time.Duration
	noAnimate      bool
	noMouse        bool
	noColor        bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "starbar [clicks-per-star]",
		Short: "Click toward stars in your terminal",
		Long: `starbar fills a progress bar one click at a time and awards a star
every time the bar is full.

The optional argument sets clicks per star; "10", "?10" and "?=10" are all
accepted. Invalid values fall back to the next source: --clicks,
STARBAR_CLICKS_PER_STAR, the config file, then the default of 10.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runWidgetCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file (--log-file=PATH; bare flag uses the state dir)")
	rootCmd.PersistentFlags().Lookup("log-file").NoOptDefVal = config.DefaultLogPath()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.PersistentFlags().StringVar(&clicksPerStar, "clicks", strconv.Itoa(counter.DefaultClicksPerStar), "clicks per star (invalid values fall back)")

	rootCmd.Flags().DurationVar(&debounceEvery, "debounce", debounce.DefaultInterval, "minimum time between accepted clicks (0 disables)")
	rootCmd.Flags().DurationVar(&normalizeEvery, "normalize-every", defaultNormalizeEvery, "interval of the state consistency check (0 disables)")
	rootCmd.Flags().BoolVar(&noAnimate, "no-animate", false, "disable bar and star animations")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable clickable buttons")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runWidgetCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("starbar needs a terminal; use `starbar simulate` for scripted runs")
	}
	if !cfg.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger, err := logging.New(logging.Options{Path: logFile, Verbose: verbose})
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger.Info("starting widget",
		zap.Int("clicks_per_star", cfg.ClicksPerStar),
		zap.Duration("debounce", cfg.Debounce),
		zap.Duration("normalize_every", cfg.NormalizeInterval),
	)

	m := tui.NewModel(cfg, counter.New(cfg.ClicksPerStar), logger)
	defer m.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveConfig merges the config file, environment and flags. Flags win when
// set explicitly; the threshold additionally prefers the positional argument.
func resolveConfig(cmd *cobra.Command, args []string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.ParseEnv()
	if err != nil {
		return model.Config{}, err
	}

	cfg := model.Config{
		ClicksPerStar:     resolveThreshold(cmd, args, fileCfg, envCfg),
		Debounce:          debounceEvery,
		NormalizeInterval: normalizeEvery,
		Animate:           !noAnimate,
		Mouse:             !noMouse,
		Color:             !noColor && envCfg.NoColor == "",
	}

	applyDurationConfig(cmd, "debounce", &cfg.Debounce, fileCfg.Widget.Debounce, envCfg.Debounce)
	applyDurationConfig(cmd, "normalize-every", &cfg.NormalizeInterval, fileCfg.Widget.NormalizeEvery, envCfg.NormalizeEvery)
	applyBoolConfig(cmd, "no-animate", &cfg.Animate, fileCfg.Widget.Animate)
	applyBoolConfig(cmd, "no-mouse", &cfg.Mouse, fileCfg.Widget.Mouse)
	if envCfg.NoColor == "" {
		applyBoolConfig(cmd, "no-color", &cfg.Color, fileCfg.Widget.Color)
	}

	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func resolveThreshold(cmd *cobra.Command, args []string, fileCfg config.FileConfig, envCfg config.EnvConfig) int {
	var candidates []*string
	if len(args) > 0 {
		arg := config.ThresholdArg(args[0])
		candidates = append(candidates, &arg)
	}
	if cmd.Flags().Changed("clicks") {
		candidates = append(candidates, &clicksPerStar)
	}
	candidates = append(candidates, envCfg.ClicksPerStar, fileCfg.Widget.ClicksPerStar)
	return config.FirstValidThreshold(candidates...)
}

// applyDurationConfig fills target from env, then the config file, unless the
// flag was given. Malformed values are skipped.
func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, fileValue, envValue *string) {
	if cmd.Flags().Changed(name) {
		return
	}
	if d, ok := config.ParseDuration(envValue); ok {
		*target = d
		return
	}
	if d, ok := config.ParseDuration(fileValue); ok {
		*target = d
	}
}

// applyBoolConfig sets a positive config key (animate = false) unless its
// --no-* flag was given.
func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateConfig(cfg model.Config) error {
	if cfg.Debounce < 0 {
		return fmt.Errorf("--debounce must be >= 0")
	}
	if cfg.NormalizeInterval < 0 {
		return fmt.Errorf("--normalize-every must be >= 0")
	}
	return nil
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [actions...]",
		Short: "Replay actions without a terminal and print each step",
		Long: `Replay a script of actions and print the counter after each step.

Actions: + or inc, - or dec, r or reset, t=N or threshold=N, n or normalize.
Runs of signs may be written together, e.g. "++++-". Put "--" before a
script that starts with "-".`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSimulateCmd,
	}
	return cmd
}

func runSimulateCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	envCfg, err := config.ParseEnv()
	if err != nil {
		return err
	}
	actions, err := simulate.ParseActions(args)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Path: logFile, Stderr: verbose, Verbose: verbose})
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	threshold := resolveThreshold(cmd, nil, fileCfg, envCfg)
	logger.Info("simulating", zap.Int("clicks_per_star", threshold), zap.Int("actions", len(actions)))

	steps := simulate.Run(counter.New(threshold), actions, logger)
	out := cmd.OutOrStdout()
	for _, line := range simulate.Table(steps) {
		if _, err := fmt.Fprintln(out, line); err != nil {
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
	path := configPath
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# starbar configuration
# Uncomment a value to enable it. CLI flags override config values.

[widget]
# clicks-per-star = "%d"     # Clicks needed for one star
# debounce = %q            # Minimum time between accepted clicks
# normalize-every = %q       # State consistency check interval ("0" disables)
# animate = true             # Animate the bar and the newest star
# mouse = true               # Clickable buttons
# color = true               # Colored output
`,
		counter.DefaultClicksPerStar,
		debounce.DefaultInterval.String(),
		defaultNormalizeEvery.String(),
	)
}

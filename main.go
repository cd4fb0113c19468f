package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"vistui/internal/catalog"
	"vistui/internal/config"
	"vistui/internal/eventbus"
	"vistui/internal/logging"
	"vistui/internal/selectable"
	"vistui/internal/ui"
	"vistui/internal/ui/viewmodels"
)

var (
	configPath  string
	catalogPath string
	logFile     string
	logLevel    string
	writePath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "vistui",
		Short:         "pick score files and step through an analysis wizard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runUI,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML file listing score files")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file (overrides config)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "print the file catalog",
		Args:  cobra.NoArgs,
		RunE:  printCatalog,
	}
	catalogCmd.Flags().StringVar(&writePath, "write", "", "also write the catalog as YAML to this path")
	rootCmd.AddCommand(catalogCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides. created
// reports that no file existed and defaults were used. bus may be nil.
func loadConfig(cmd *cobra.Command, bus eventbus.EventBus) (cfg *config.Config, svc config.ConfigService, created bool, err error) {
	svc = config.NewConfigServiceWithBus(configPath, bus)
	if _, statErr := os.Stat(svc.Path()); errors.Is(statErr, os.ErrNotExist) {
		created = true
	}
	cfg, err = svc.Load()
	if err != nil {
		return nil, nil, false, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = catalogPath
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	return cfg, svc, created, nil
}

// catalogFiles returns the configured catalog, or the built-in one when
// none is configured
func catalogFiles(cfg *config.Config) ([]string, error) {
	if cfg.Catalog == "" {
		return nil, nil
	}
	names, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.Catalog, err)
	}
	return names, nil
}

func runUI(cmd *cobra.Command, _ []string) error {
	// The logger depends on the config, so events raised while loading it
	// are held until the logger exists.
	bus := eventbus.New(nil)
	var early []eventbus.DomainEvent
	stopEarly := bus.SubscribeAll(func(e eventbus.DomainEvent) { early = append(early, e) })

	cfg, svc, created, err := loadConfig(cmd, bus)
	stopEarly()
	if err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer closer.Close()
	slog.SetDefault(logger)
	for _, e := range early {
		logging.LogEvent(logger, e)
	}
	detach := logging.Attach(bus, logger)
	defer detach()

	if created {
		if err := svc.Save(config.DefaultConfig()); err != nil {
			logger.Warn("could not write default config", "path", svc.Path(), "err", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	files, err := catalogFiles(cfg)
	if err != nil {
		return err
	}

	vm := viewmodels.NewViewModel(viewmodels.Options{
		Catalog:   files,
		Steps:     cfg.Wizard.Steps,
		StartStep: cfg.Wizard.StartStep,
	}, bus)
	defer vm.Dispose()

	model := ui.NewModel(cfg, vm, bus)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	logger.Info("starting ui", "files", vm.Files.Items.Len(), "steps", len(cfg.Wizard.Steps))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("ui exited", "step", vm.Step.Get(), "pieces", vm.Pieces.Items.Len())
	return nil
}

func printCatalog(cmd *cobra.Command, _ []string) error {
	cfg, _, _, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	names, err := catalogFiles(cfg)
	if err != nil {
		return err
	}
	if names == nil {
		names = selectable.DefaultCatalog
	}

	if err := renderCatalog(cmd.OutOrStdout(), names); err != nil {
		return err
	}

	if writePath != "" {
		data, err := catalog.Marshal(names)
		if err != nil {
			return err
		}
		if err := os.WriteFile(writePath, data, 0o644); err != nil {
			return fmt.Errorf("write catalog: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "catalog written to %s\n", writePath)
	}
	return nil
}

func renderCatalog(w io.Writer, names []string) error {
	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "File", "Piece").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for i, name := range names {
		t.Row(fmt.Sprint(i+1), name, catalog.PieceTitle(name))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// VATScope is a terminal viewer for the pilots and controllers online
// on the VATSIM network.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vatscope/vatscope/internal/app"
	"github.com/vatscope/vatscope/internal/config"
	"github.com/vatscope/vatscope/internal/logging"
	"github.com/vatscope/vatscope/internal/vatsim"
)

var (
	flagTheme     string
	flagStatusURL string
	flagTimeout   int
	flagLogFile   string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "vatscope",
	Short: "Browse pilots and controllers online on the VATSIM network",
	Long: `VATScope fetches a snapshot of the VATSIM data feed and lets you
browse the connected pilots and controllers in a tabbed terminal UI.

Move with the arrow keys (or j/k), switch lists with tab, jump ten
rows with pgup/pgdn, and press enter for details on the highlighted
entry. From the detail view, o opens the member's stats page in your
browser.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagTheme, "theme", "t", "", "color theme (see 'vatscope themes')")
	rootCmd.Flags().StringVar(&flagStatusURL, "status-url", "", "override the status endpoint")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "log file path")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	applyFlagOverrides(cfg)

	logging.Configure(cfg.Logging.File, cfg.Logging.Verbose)
	logging.Info("vatscope starting")
	logging.Debug("config file: %s", config.GetConfigPath())

	fmt.Printf("Fetching VATSIM data (%s)...\n", cfg.Network.StatusURL)

	timeout := time.Duration(cfg.Network.TimeoutSeconds) * time.Second
	client := vatsim.NewClient(cfg.Network.StatusURL, timeout)

	// two requests: the status document, then the data document
	ctx, cancel := context.WithTimeout(context.Background(), 2*timeout)
	defer cancel()

	data, err := client.Fetch(ctx)
	if err != nil {
		logging.Error("fetch snapshot: %v", err)
		return fmt.Errorf("fetch snapshot: %w", err)
	}

	model := app.NewModel(cfg, data, client.DataURL())
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logging.Error("ui: %v", err)
		return fmt.Errorf("run ui: %w", err)
	}

	_ = config.Save(cfg)
	logging.Info("vatscope exited")
	return nil
}

// applyFlagOverrides layers explicitly set flags over the loaded config.
func applyFlagOverrides(cfg *config.Config) {
	if flagTheme != "" {
		cfg.Display.Theme = flagTheme
	}
	if flagStatusURL != "" {
		cfg.Network.StatusURL = flagStatusURL
	}
	if flagTimeout > 0 {
		cfg.Network.TimeoutSeconds = flagTimeout
	}
	if flagLogFile != "" {
		cfg.Logging.File = flagLogFile
	}
	if flagVerbose {
		cfg.Logging.Verbose = true
	}
}

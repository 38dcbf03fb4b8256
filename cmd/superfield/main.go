package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/superfield/internal/config"
	"github.com/san-kum/superfield/internal/scene"
	"github.com/san-kum/superfield/internal/viz"
	"github.com/spf13/cobra"
)

const debugEnv = "SUPERFIELD_DEBUG"

var (
	version    = "dev"
	configFile string
	theme      string
)

// main opens the superfield animation and exits with status 1 if it cannot
// be shown.
func main() {
	rootCmd := &cobra.Command{
		Use:          "superfield",
		Short:        "animated view of a toy superfield",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runAnimation,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	// CLI flags override config
	if cmd.Flags().Changed("theme") {
		cfg.View.Theme = theme
	}
	return cfg, nil
}

func runAnimation(cmd *cobra.Command, args []string) error {
	if path := os.Getenv(debugEnv); path != "" {
		f, err := tea.LogToFile(path, "superfield")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := scene.New(cfg)
	if err != nil {
		return err
	}
	log.Printf("grid %dx%d, frames %d..%d step %d every %v, repeat=%v blit=%v",
		cfg.Grid.Theta.Samples, cfg.Grid.X.Samples,
		cfg.Animation.Start, cfg.Animation.Stop-1, cfg.Animation.Step,
		cfg.Interval(), cfg.Animation.Repeat, cfg.Animation.Blit)

	return viz.Run(s.Model())
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scorch/internal/config"
	"github.com/vovakirdan/tui-scorch/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagSSHDBPath    string
	flagIdleTimeout  int
	flagServeConfig  string
	flagServeWeather string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play matches.

Each SSH connection gets its own match with fresh terrain. Results are
stored per-server (all users share the same leaderboards).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.scorch/host_key

Examples:
  scorch serve                           # Listen on :23234 with auto-generated key
  scorch serve --ssh :2222               # Listen on port 2222
  scorch serve --host-key ./my_host_key  # Use specific host key
  scorch serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.scorch/results.db", "Path to results database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom match config YAML")
	serveCmd.Flags().StringVar(&flagServeWeather, "weather", "", "Weather preset: calm, breeze, classic, storm")
}

func runServe(_ *cobra.Command, _ []string) {
	scorchCfg, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagServeWeather != "" {
		config.ApplyWeatherPreset(&scorchCfg, config.WeatherPreset(flagServeWeather))
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		Match:       scorchCfg.ToMatchConfig(0),
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting scorch SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

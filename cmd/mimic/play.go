package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkarev/mimic/internal/audio"
	"github.com/mkarev/mimic/internal/config"
	"github.com/mkarev/mimic/internal/core"
	"github.com/mkarev/mimic/internal/game"
	"github.com/mkarev/mimic/internal/platform/tui"
	"github.com/mkarev/mimic/internal/storage"
)

var (
	flagConfig string
	flagName   string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a solo run",
	Long: `Start a solo run through the level catalog.

Controls:
  Enter      - Start / next level / retry
  Space      - Open or close your mouth (toggle)
  R          - Play again (after game over)
  Q/Ctrl+C   - Quit

Examples:
  mimic play
  mimic play --mute
  mimic play --seed 7
  mimic play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the results table (default: OS user)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	catalog, err := game.LoadCatalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rcfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if !cmd.Flags().Changed("fps") && cfg.Round.TickRate > 0 {
		rcfg.TickRate = cfg.Round.TickRate
	}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.DB.Path
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: results will not be saved: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var sink *audio.SynthSink
	if cfg.Audio.Enabled && !flagMute {
		if sink, err = audio.NewSynthSink(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", err)
		}
	}

	if err := tui.Run(catalog, audio.NewArbiter(sink), store, rcfg, playerName()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}

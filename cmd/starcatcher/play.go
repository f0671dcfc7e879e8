package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-catcher/internal/audio"
	"github.com/vovakirdan/star-catcher/internal/platform/tui"
	"github.com/vovakirdan/star-catcher/internal/registry"
	"github.com/vovakirdan/star-catcher/internal/session"
)

var (
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagMute    bool
	flagNoAudio bool
	flagHold    int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start the menu of the specified variant.

Controls:
  Space/Up     - Flap; start from the menu; retry after game over
  Left/Right   - Move the basket (catcher)
  Enter        - Start
  R            - Retry after game over
  Esc          - Back to the menu; exit from the menu
  M            - Toggle sound (menu only)
  Mouse click  - Press menu buttons; flap while playing
  Q/Ctrl+C     - Quit

Examples:
  starcatcher play flappy
  starcatcher play catcher --seed 7
  starcatcher play flappy --config ./my-flappy.yaml --log-file play.log`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", tui.DefaultFPS, "Tick rate (frames per second)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom variant config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Never open the audio device")
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a left/right press counts as held")
}

func runPlay(cmd *cobra.Command, args []string) error {
	game, err := createVariant(args[0], flagConfig)
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI: only log to an explicit file.
	playLogger := logger
	if flagLogFile == "" {
		playLogger = log.New(io.Discard)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	var player *audio.Player
	if flagNoAudio {
		player = audio.NewSilent(playLogger)
	} else {
		player = audio.New(playLogger)
	}
	defer player.Close()

	sess := session.New(game,
		session.WithSeed(flagSeed),
		session.WithSound(!flagMute),
		session.WithLogger(playLogger),
	)

	playLogger.Info("starting", "variant", game.ID(), "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(sess, tui.Options{
		FPS:       flagFPS,
		HoldTicks: flagHold,
		Width:     width,
		Height:    height,
		Sounds:    player,
		Logger:    playLogger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Best score this session: %d\n", sess.HighScore())
	return nil
}

// createVariant checks the id, loads and validates its config and returns a
// fresh instance.
func createVariant(id, configPath string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown variant %q (run 'starcatcher list' to see available variants)", id)
	}

	if _, err := loadConfig(id, configPath); err != nil {
		return nil, err
	}
	setConfigPath(id, configPath)

	game, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("creating variant: %w", err)
	}
	return game, nil
}

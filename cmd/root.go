package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/termsweep/config"
	"github.com/they4kman/termsweep/director/constraint"
	"github.com/they4kman/termsweep/game"
	"github.com/they4kman/termsweep/shell"
)

var (
	configPath  string
	useDirector bool
	flagValues  = config.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "termsweep",
	Short: "Play Minesweeper in the terminal",
	Long: `termsweep is a Minesweeper game played through typed commands.

Run with no arguments to play a 9x9 board with 10 mines
	termsweep

Play a fixed mine layout
	termsweep --map layouts/cross.yaml

Use the director flag to make the computer play for you
	termsweep -d
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		game.Log.SetLevel(level)
		game.Log.SetOutput(os.Stderr)

		if cfg.Seed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		game.Log.WithField("seed", cfg.Seed).Debug("starting game")

		board, err := createBoard(cfg)
		if err != nil {
			return err
		}
		if game.Log.IsLevelEnabled(logrus.DebugLevel) {
			game.Log.WithField("seed", cfg.Seed).Debugf("mine layout:\n%s", board.MineMap().Serialize())
		}
		director := constraint.New(rand.NewSource(cfg.Seed + 1))

		var outcome shell.Outcome
		if useDirector {
			outcome, err = autoplay(board, director, cmd.OutOrStdout())
		} else {
			outcome, err = shell.New(board, cmd.InOrStdin(), cmd.OutOrStdout(),
				shell.WithHistorySize(cfg.History),
				shell.WithDirector(director),
			).Run()
		}
		if err != nil {
			return err
		}

		game.Log.WithField("outcome", outcome).Info("game finished")
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and environment, then applies any flag
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = flagValues.Width
	}
	if flags.Changed("height") {
		cfg.Height = flagValues.Height
	}
	if flags.Changed("mines") {
		cfg.NumMines = flagValues.NumMines
	}
	if flags.Changed("seed") {
		cfg.Seed = flagValues.Seed
	}
	if flags.Changed("map") {
		cfg.MapPath = flagValues.MapPath
	}
	if flags.Changed("history") {
		cfg.History = flagValues.History
	}
	if flags.Changed("flag-opened") {
		cfg.FlagOpened = flagValues.FlagOpened
	}
	if flags.Changed("color") {
		cfg.Color = flagValues.Color
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagValues.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func createBoard(cfg *config.Config) (*game.Board, error) {
	flagPolicy := game.FlagAnywhere
	if !cfg.FlagOpened {
		flagPolicy = game.FlagClosedOnly
	}
	opts := []game.Option{
		game.WithFlagPolicy(flagPolicy),
		game.WithColor(cfg.Color),
	}

	if cfg.MapPath == "" {
		return game.NewRandomBoard(cfg.Width, cfg.Height, cfg.NumMines, rand.NewSource(cfg.Seed), opts...)
	}

	in, err := os.ReadFile(cfg.MapPath)
	if err != nil {
		return nil, err
	}
	mineMap, err := game.LoadMineMap(in)
	if err != nil {
		return nil, err
	}
	return mineMap.CreateBoard(opts...)
}

// autoplay lets director act until the board is decided.
func autoplay(board *game.Board, director game.Director, out io.Writer) (shell.Outcome, error) {
	director.Init(board)

	outcome := shell.Won
	for !board.Finished() {
		err := director.Act()
		if errors.Is(err, game.ErrGameOver) {
			outcome = shell.Lost
			break
		}
		if errors.Is(err, game.ErrNoMoves) {
			outcome = shell.Quit
			break
		}
		if err != nil {
			return shell.Quit, err
		}
	}

	if _, err := board.Show(out); err != nil {
		return outcome, err
	}
	fmt.Fprintf(out, "Director %s.\n", outcome)
	return outcome, nil
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().IntVarP(&flagValues.Width, "width", "w", 9, "Width of game board, in cells")
	rootCmd.Flags().IntVarP(&flagValues.Height, "height", "h", 9, "Height of game board, in cells")
	rootCmd.Flags().IntVarP(&flagValues.NumMines, "mines", "m", 10, "Number of mines to place in the game board")
	rootCmd.Flags().Int64Var(&flagValues.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().StringVar(&flagValues.MapPath, "map", "", "Path to a mine layout (YAML or plain rows, 'x' marks a mine)")
	rootCmd.Flags().IntVar(&flagValues.History, "history", shell.DefaultHistorySize, "Number of past commands shown beneath the board")
	rootCmd.Flags().BoolVar(&flagValues.FlagOpened, "flag-opened", true, "Allow flags on opened cells")
	rootCmd.Flags().BoolVar(&flagValues.Color, "color", true, "Colour the numbers of opened cells")
	rootCmd.Flags().StringVar(&flagValues.LogLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
}

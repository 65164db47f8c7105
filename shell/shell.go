package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/termsweep/game"
	"golang.org/x/term"
)

const (
	prompt = "> "

	DefaultHistorySize = 20
)

type Outcome int

const (
	Quit Outcome = iota
	Won
	Lost
)

func (outcome Outcome) String() string {
	switch outcome {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "quit"
	}
}

var errQuit = errors.New("quit")

const helpText = `commands:
o X Y, open X Y   open the cell at column X, row Y
f X Y, flag X Y   toggle the flag at column X, row Y
hint              let the computer make a move
q, quit           leave the game`

// Shell reads commands from in and plays them on a Board, redrawing the
// board and a pane of recent commands to out after each one.
type Shell struct {
	board    *game.Board
	in       *bufio.Scanner
	out      io.Writer
	director game.Director

	history     []string
	historySize int

	log logrus.FieldLogger
}

type Option func(*Shell)

func WithHistorySize(size int) Option {
	return func(shell *Shell) {
		shell.historySize = size
	}
}

// WithDirector enables the hint command.
func WithDirector(director game.Director) Option {
	return func(shell *Shell) {
		shell.director = director
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(shell *Shell) {
		shell.log = log
	}
}

func New(board *game.Board, in io.Reader, out io.Writer, opts ...Option) *Shell {
	shell := &Shell{
		board:       board,
		in:          bufio.NewScanner(in),
		out:         out,
		historySize: DefaultHistorySize,
		log:         game.Log,
	}
	for _, opt := range opts {
		opt(shell)
	}
	if shell.director != nil {
		shell.director.Init(board)
	}
	return shell
}

// Run plays until the board is won or lost, the player quits or input ends.
func (shell *Shell) Run() (Outcome, error) {
	outcome, err := shell.loop()
	if err != nil {
		return outcome, err
	}

	if _, err := shell.board.Show(shell.out); err != nil {
		return outcome, err
	}
	switch outcome {
	case Won:
		fmt.Fprintln(shell.out, "Cleared! You win.")
	case Lost:
		fmt.Fprintln(shell.out, "Boom. Game over.")
	}
	return outcome, nil
}

func (shell *Shell) loop() (Outcome, error) {
	for {
		if err := shell.redraw(); err != nil {
			return Quit, err
		}

		if !shell.in.Scan() {
			return Quit, shell.in.Err()
		}
		line := strings.TrimSpace(shell.in.Text())
		if line == "" {
			continue
		}
		shell.pushHistory(line)

		err := shell.execute(line)
		switch {
		case errors.Is(err, errQuit):
			return Quit, nil
		case errors.Is(err, game.ErrGameOver):
			shell.log.WithError(err).Debug("shell: game over")
			return Lost, nil
		case err != nil:
			shell.pushHistory(err.Error())
		}

		if shell.board.Finished() {
			return Won, nil
		}
	}
}

func (shell *Shell) redraw() error {
	lines, err := shell.board.Show(shell.out)
	if err != nil {
		return err
	}

	fmt.Fprintln(shell.out, prompt)
	visible := shell.visibleHistory(lines)
	for _, entry := range shell.history[:visible] {
		fmt.Fprintf(shell.out, "  %s\n", entry)
	}

	// Move back up to the prompt line
	fmt.Fprintf(shell.out, "\033[%dA", visible+1)
	fmt.Fprint(shell.out, prompt)
	return nil
}

// visibleHistory caps the history pane so it fits beneath a board of
// boardLines lines when writing to a terminal.
func (shell *Shell) visibleHistory(boardLines int) int {
	visible := min(len(shell.history), shell.historySize)

	if f, ok := shell.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if _, height, err := term.GetSize(int(f.Fd())); err == nil {
			visible = max(0, min(visible, height-boardLines-2))
		}
	}
	return visible
}

func (shell *Shell) pushHistory(entries ...string) {
	shell.history = append(entries, shell.history...)
	if len(shell.history) > shell.historySize {
		shell.history = shell.history[:shell.historySize]
	}
}

func (shell *Shell) execute(line string) error {
	fields := strings.Fields(line)
	command, args := strings.ToLower(fields[0]), fields[1:]

	switch command {
	case "o", "open":
		x, y, err := parseCoords(args)
		if err != nil {
			return err
		}
		_, err = shell.board.Open(x, y)
		return err

	case "f", "flag":
		x, y, err := parseCoords(args)
		if err != nil {
			return err
		}
		shell.board.Flag(x, y)
		return nil

	case "hint":
		if shell.director == nil {
			return fmt.Errorf("hint: no director configured")
		}
		err := shell.director.Act()
		if errors.Is(err, game.ErrNoMoves) {
			return fmt.Errorf("hint: %w", err)
		}
		return err

	case "h", "help":
		shell.pushHistory(strings.Split(helpText, "\n")...)
		return nil

	case "q", "quit", "exit":
		return errQuit

	default:
		return fmt.Errorf("unknown command %q (try help)", command)
	}
}

func parseCoords(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected 2 coordinates, got %d", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x coordinate %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y coordinate %q", args[1])
	}
	return x, y, nil
}

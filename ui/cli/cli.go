package cli

import (
	"bufio"
	"evilboard/src"
	"evilboard/src/base"
	"evilboard/src/compose"
	"evilboard/src/logx"
	"fmt"
	"io"
	"strings"
)

type CLIProcessing struct {
	builder *src.BoardBuilder
	draw    DrawFunc
	logger  logx.Logger
	in      io.Reader
	out     io.Writer
}

func NewCLI(b *src.BoardBuilder, draw DrawFunc, logger logx.Logger, in io.Reader, out io.Writer) *CLIProcessing {
	return &CLIProcessing{builder: b, draw: draw, logger: logger, in: in, out: out}
}

// Render draws the current state once.
func (c *CLIProcessing) Render() {
	c.draw(c.out, compose.Compose(c.builder.Snapshot(), c.logger))
}

// Run reads annotation commands line by line and redraws after each change:
// - arrow e2e4   toggle an arrow
// - premove e2e4 [wN] queue a premove of the piece on e2, or of the given piece
// - flip, notation, clear, fen <FEN>
// - q to quit
func (c *CLIProcessing) Run() error {
	scanner := bufio.NewScanner(c.in)
	c.Render()
	fmt.Fprintln(c.out, "Commands: arrow e2e4, premove e2e4 [wN], flip, notation, clear, fen <FEN>, q")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "Q" || line == "quit" {
			return nil
		}
		if err := c.exec(line); err != nil {
			fmt.Fprintf(c.out, "Invalid command %q: %v\n", line, err)
			continue
		}
		c.Render()
	}
	return scanner.Err()
}

func (c *CLIProcessing) exec(line string) error {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "arrow", "a":
		a, err := base.ParseArrow(arg)
		if err != nil {
			return err
		}
		return c.builder.ToggleArrow(a.From, a.To)
	case "premove", "p":
		move, pieceArg, _ := strings.Cut(arg, " ")
		a, err := base.ParseArrow(move)
		if err != nil {
			return err
		}
		piece, ok := c.builder.PieceAt(a.From)
		if pieceArg = strings.TrimSpace(pieceArg); pieceArg != "" {
			if piece, err = base.ParsePiece(pieceArg); err != nil {
				return err
			}
		} else if !ok {
			return fmt.Errorf("no piece on %s", a.From)
		}
		return c.builder.AddPremove(base.Premove{Source: a.From, Target: a.To, Piece: piece})
	case "flip":
		c.builder.Flip()
	case "notation":
		c.builder.SetShowNotation(!c.builder.ShowNotation())
	case "clear":
		c.builder.ClearArrows()
		c.builder.ClearPremoves()
	case "fen":
		return c.builder.CreateFromFEN(arg)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

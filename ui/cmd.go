package ui

import (
	"context"
	"errors"
	"evilboard/src"
	"evilboard/src/base"
	"evilboard/src/compose"
	"evilboard/src/logx"
	clic "evilboard/ui/cli"
	"evilboard/ui/export"
	"evilboard/ui/gui"
	"evilboard/ui/gui/gbase"
	"evilboard/ui/gui/gbase/gconf"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

const logfile string = "evilboard.log"

func GetLogger(file io.Writer, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// withBoard opens the log, loads the config and prepares the board described
// by the flags, then hands everything to fn.
func withBoard(c *cli.Command, fn func(bb *src.BoardBuilder, cfg *gconf.Config, l logx.Logger) error) error {
	file, err := os.OpenFile(c.String("log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync()

	cfg, err := gconf.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("error load config: %w", err)
	}
	bb, err := BuildBoard(c, cfg, l)
	if err != nil {
		return err
	}
	return fn(bb, cfg, l)
}

// BuildBoard applies config values first and flags on top of them.
func BuildBoard(c *cli.Command, cfg *gconf.Config, l logx.Logger) (*src.BoardBuilder, error) {
	bb := src.NewBoardBuilder(l)
	if fen := c.String("fen"); fen != "" {
		if err := bb.CreateFromFEN(fen); err != nil {
			return nil, err
		}
	} else {
		bb.CreateClassic()
	}

	orientation := cfg.BoardOrientation()
	if c.IsSet("orientation") {
		o, err := base.OrientationFromString(c.String("orientation"))
		if err != nil {
			return nil, err
		}
		orientation = o
	}
	bb.SetOrientation(orientation)

	width := cfg.BoardWidth
	if c.IsSet("width") {
		width = c.Float("width")
	}
	if err := bb.SetWidth(width); err != nil {
		return nil, err
	}

	notation := cfg.ShowNotation
	if c.IsSet("notation") {
		notation = c.Bool("notation")
	}
	bb.SetShowNotation(notation)

	style, err := cfg.ArrowStyle()
	if err != nil {
		l.Warnf("arrow style from config ignored: %v", err)
	}
	bb.SetArrowStyle(style)

	arrows, err := ParseArrowList(c.String("arrows"))
	if err != nil {
		return nil, fmt.Errorf("error parse arrows: %w", err)
	}
	for _, a := range arrows {
		if err := bb.ToggleArrow(a.From, a.To); err != nil {
			return nil, err
		}
	}

	premoves, err := ParseArrowList(c.String("premoves"))
	if err != nil {
		return nil, fmt.Errorf("error parse premoves: %w", err)
	}
	for _, a := range premoves {
		p, ok := bb.PieceAt(a.From)
		if !ok {
			return nil, fmt.Errorf("error premove %s: no piece on %s", a, a.From)
		}
		if err := bb.AddPremove(base.Premove{Source: a.From, Target: a.To, Piece: p}); err != nil {
			return nil, err
		}
	}
	return bb, nil
}

// ParseArrowList reads "e2e4,g1f3". Blank input is an empty list.
func ParseArrowList(s string) ([]base.Arrow, error) {
	var out []base.Arrow
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		a, err := base.ParseArrow(part)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func RunGUI(c *cli.Command) error {
	return withBoard(c, func(bb *src.BoardBuilder, cfg *gconf.Config, l logx.Logger) error {
		g, err := gui.NewGUI(bb, cfg, l)
		if err != nil {
			return err
		}
		if err := g.Run(); err != nil && !errors.Is(err, gbase.ErrExit) {
			return err
		}
		return nil
	})
}

func NewCommand() *cli.Command {
	boardFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "fen",
			Usage: "position in FEN (placement field is enough) or \"start\"",
		},
		&cli.StringFlag{
			Name:  "arrows",
			Usage: "comma separated arrows, e.g. e2e4,g1f3",
		},
		&cli.StringFlag{
			Name:  "premoves",
			Usage: "comma separated premoves, e.g. e2e4",
		},
		&cli.StringFlag{
			Name:    "orientation",
			Aliases: []string{"o"},
			Usage:   "white or black on bottom",
		},
		&cli.FloatFlag{
			Name:    "width",
			Aliases: []string{"w"},
			Usage:   "board width in pixels",
		},
		&cli.BoolFlag{
			Name:  "notation",
			Usage: "draw file and rank labels",
		},
		&cli.StringFlag{
			Name:  "config",
			Value: gconf.ConfigFile,
			Usage: "path to JSON config",
		},
		&cli.StringFlag{
			Name:  "log",
			Value: logfile,
			Usage: "path to log file",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Value:   "info",
			Usage:   "logger level",
		},
		&cli.BoolFlag{
			Name:    "dev",
			Aliases: []string{"d"},
			Usage:   "development logger encoding",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "console logger encoding",
		},
	}

	// root flags are inherited by every subcommand
	return &cli.Command{
		Name:  "evilboard",
		Usage: "chessboard with arrows and premoves",
		Flags: boardFlags,
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "open the board window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "render",
				Usage: "write the board as PNG",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: "board.png",
						Usage: "PNG output path, - for stdout",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withBoard(c, func(bb *src.BoardBuilder, cfg *gconf.Config, l logx.Logger) error {
						return renderPNG(c.String("out"), c.Root().Writer, bb, cfg, l)
					})
				},
			},
			{
				Name:  "print",
				Usage: "print the board to the terminal",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "interactive",
						Aliases: []string{"i"},
						Usage:   "read annotation commands from stdin",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return withBoard(c, func(bb *src.BoardBuilder, cfg *gconf.Config, l logx.Logger) error {
						draw := clic.DrawerFor(os.Stdout)
						cl := clic.NewCLI(bb, draw, l, os.Stdin, os.Stdout)
						if c.Bool("interactive") {
							return cl.Run()
						}
						cl.Render()
						return nil
					})
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}
}

func renderPNG(out string, stdout io.Writer, bb *src.BoardBuilder, cfg *gconf.Config, l logx.Logger) error {
	f := compose.Compose(bb.Snapshot(), l)
	th := export.ThemeFromConfig(cfg)
	if out == "-" {
		return export.RenderPNG(stdout, f, th)
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("error create %s: %w", out, err)
	}
	if err := export.RenderPNG(file, f, th); err != nil {
		file.Close()
		return fmt.Errorf("error render PNG: %w", err)
	}
	l.Infof("board saved to %s", out)
	return file.Close()
}

func RunEvilBoard() error {
	return NewCommand().Run(context.Background(), os.Args)
}

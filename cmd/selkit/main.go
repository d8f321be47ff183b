package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	"github.com/reoring/selkit/i18n"
)

// Global is shared with every command's Run method.
type Global struct {
	Logger *zap.Logger
	Out    io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	Lang    string `help:"Message language" enum:"en,ja" default:"en"`

	Render RenderCmd `cmd:"" help:"Render the selectors defined in a YAML or JSON document"`
	Build  BuildCmd  `cmd:"" help:"Build one compound selector from category=value parts"`
	Rect   RectCmd   `cmd:"" help:"Serialize and deserialize rectangles"`
}

// AfterApply runs after flag parsing.
func (c *CLI) AfterApply() error {
	i18n.SetLanguage(c.Lang)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("selkit"),
		kong.Description("CSS compound-selector builder and rectangle codec"),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.Verbose)
	defer func() { _ = logger.Sync() }()

	if err := ctx.Run(&Global{Logger: logger, Out: os.Stdout}); err != nil {
		logger.Error("Command failed", zap.String("command", ctx.Command()), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

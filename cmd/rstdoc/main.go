package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/nieomylnieja/rstdoc/internal/goreflect"
	"github.com/nieomylnieja/rstdoc/pkg/reflection"
	"github.com/nieomylnieja/rstdoc/pkg/rstdoc"
)

const (
	outputFlag           = "output"
	includeInheritedFlag = "include-inherited"
	concurrencyFlag      = "concurrency"
	searchDirFlag        = "dir"
	quietFlag            = "quiet"
	debugFlag            = "debug"
)

var buildFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./docs",
		Usage:   "Output directory for the generated .rst documents",
	},
	&cli.BoolFlag{
		Name:  includeInheritedFlag,
		Usage: "Document members declared by ancestors on every subclass page, disabled by default",
	},
	&cli.IntFlag{
		Name:  concurrencyFlag,
		Usage: "Number of documents rendered at the same time, defaults to GOMAXPROCS",
	},
}

func newApp(logger *logrus.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "rstdoc"
	app.Usage = "Generate Sphinx reStructuredText API documentation from reflected classes."
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    quietFlag,
			Aliases: []string{"q"},
			Usage:   "Make the logger quiet.",
		},
		&cli.BoolFlag{
			Name:  debugFlag,
			Usage: "Enable debug logs, disabled by default",
		},
	}
	app.Before = func(c *cli.Context) error {
		switch {
		case c.Bool(quietFlag):
			logger.SetLevel(logrus.ErrorLevel)
		case c.Bool(debugFlag):
			logger.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:      "manifest",
			Aliases:   []string{"m"},
			Usage:     "Document classes loaded from YAML reflection manifests",
			ArgsUsage: "PATTERN...",
			Flags:     buildFlags,
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return errors.New("at least one manifest pattern is required")
				}
				classes, err := reflection.LoadManifestFiles(c.Args().Slice()...)
				if err != nil {
					return err
				}
				return build(c, logger, classes)
			},
		},
		{
			Name:      "go",
			Usage:     "Document exported types of Go packages",
			ArgsUsage: "PACKAGE...",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    searchDirFlag,
					Aliases: []string{"d"},
					Usage:   "Directory the package patterns are relative to, defaults to the module root",
				},
			}, buildFlags...),
			Action: func(c *cli.Context) error {
				loader, err := goreflect.NewLoader(c.String(searchDirFlag), c.Args().Slice()...)
				if err != nil {
					return err
				}
				classes, err := loader.Classes()
				if err != nil {
					return err
				}
				return build(c, logger, classes)
			},
		},
	}
	return app
}

func build(c *cli.Context, logger *logrus.Logger, classes []reflection.Class) error {
	opts := []rstdoc.Option{
		rstdoc.WithLogger(logger),
		rstdoc.WithConcurrency(c.Int(concurrencyFlag)),
	}
	if c.Bool(includeInheritedFlag) {
		opts = append(opts, rstdoc.WithInheritedMembers())
	}
	return rstdoc.Build(c.Context, c.String(outputFlag), classes, opts...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.StandardLogger()
	if err := newApp(logger).RunContext(ctx, os.Args); err != nil {
		logger.WithError(err).Error("documentation generation failed")
		stop()
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/epicview"
	"github.com/bodgit/epicview/band"
	"github.com/bodgit/epicview/colormap"
	"github.com/bodgit/epicview/display"
	"github.com/urfave/cli/v2"
)

const defaultFile = "epic_1b_20241218144211_03.h5"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "epicview"
	app.Usage = "DSCOVR EPIC band and natural colour viewer"
	app.Version = "1.0.0"
	app.ArgsUsage = "[FILE]"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			EnvVars: []string{"EPICVIEW_FILE"},
			Value:   defaultFile,
			Usage:   "path to EPIC level 1B HDF5 file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		file := c.String("file")
		if c.NArg() > 0 {
			file = c.Args().First()
		}

		logger := log.New(io.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		name, ok, err := colormap.Ask(os.Stdin, os.Stdout)
		if err != nil {
			return cli.Exit(err, 1)
		}
		if !ok {
			fmt.Fprintln(os.Stderr, colormap.Warning)
		}

		e := epicview.New(band.NewFile(file), display.Monitor{}, logger)

		if err := display.Run(func(v display.Viewer) error {
			return e.Run(v, name)
		}, logger); err != nil {
			return cli.Exit(fmt.Sprintf("error: %v", err), 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

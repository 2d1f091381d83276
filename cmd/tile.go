// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sqtile/grid"
	"github.com/katalvlaran/sqtile/gridio"
	"github.com/katalvlaran/sqtile/tiling"
)

// tileOptions holds the flags shared by the root and tile commands.
type tileOptions struct {
	wall     string
	strategy string
	strict   bool
	verify   bool
	stats    bool
	verbose  bool
}

// bind registers the flags on c.
func (o *tileOptions) bind(c *cobra.Command) {
	f := c.Flags()
	f.StringVar(&o.wall, "wall", tiling.DefaultWallMarker, "marker printed for wall cells")
	f.StringVar(&o.strategy, "strategy", tiling.RunLengthSide.String(), "side strategy: runlength, forward or free")
	f.BoolVar(&o.strict, "strict", false, "fail instead of clamping squares that pass the grid edge")
	f.BoolVar(&o.verify, "verify", false, "check coverage, label order and squareness; fail on violations")
	f.BoolVar(&o.stats, "stats", false, "print tiling statistics to stderr")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log progress to stderr")
}

func newTileCmd() *cobra.Command {
	opts := &tileOptions{}
	c := &cobra.Command{
		Use:   "tile [file]",
		Short: "Tile a grid file (.yaml/.yml or text), or the built-in example",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runTile(cmd, opts, path)
		},
	}
	opts.bind(c)

	return c
}

// runTile loads the grid, tiles it and prints the labeled grid to stdout.
func runTile(cmd *cobra.Command, o *tileOptions, path string) error {
	logger := newLogger(cmd, o.verbose)

	g, fileWall, err := loadGrid(path, logger)
	if err != nil {
		return err
	}
	wall := o.wall
	if fileWall != "" && !cmd.Flags().Changed("wall") {
		wall = fileWall
	}
	if err := tiling.ValidateWallMarker(wall); err != nil {
		return err
	}

	strat, err := tiling.ParseSideStrategy(o.strategy)
	if err != nil {
		return err
	}
	bounds := tiling.Clamp
	if o.strict {
		bounds = tiling.Strict
	}
	logger.WithFields(logrus.Fields{
		"rows":     g.Height(),
		"cols":     g.Width(),
		"floor":    g.FloorCount(),
		"strategy": strat.String(),
		"strict":   o.strict,
	}).Info("tiling grid")

	res, err := tiling.Tile(g, tiling.WithSideStrategy(strat), tiling.WithBoundsPolicy(bounds))
	if err != nil {
		return err
	}
	logger.WithField("tiles", res.NumTiles()).Info("placed tiles")

	if err := res.Render(cmd.OutOrStdout(), wall); err != nil {
		return err
	}

	if o.stats {
		st := res.Stats()
		fmt.Fprintf(cmd.ErrOrStderr(), "tiles=%d floor=%d walls=%d regions=%d largest_side=%d non_square=%d\n",
			st.Tiles, st.FloorCells, st.WallCells, len(g.Regions()), st.LargestSide, st.NonSquare)
	}
	if o.verify {
		if err := tiling.Verify(g, res); err != nil {
			logger.WithError(err).Warn("verification failed")
			return fmt.Errorf("verification failed:\n%w", err)
		}
		logger.Info("verification passed")
	}

	return nil
}

// loadGrid returns the grid at path, or the built-in example when path is "".
func loadGrid(path string, logger *logrus.Logger) (*grid.Grid, string, error) {
	if path == "" {
		logger.Info("no input file, using built-in example")
		return gridio.Example(), "", nil
	}
	lay, err := gridio.Load(path)
	if err != nil {
		return nil, "", err
	}
	logger.WithField("path", path).Info("loaded grid")

	return lay.Grid, lay.Wall, nil
}

// newLogger returns a logrus logger writing plain text to stderr. Progress
// is logged at info level, which only -v enables; warnings always show.
func newLogger(cmd *cobra.Command, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}

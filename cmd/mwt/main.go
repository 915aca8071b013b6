// Command mwt computes (or approximates) the minimum-weight triangulation of
// a planar point set and prints a machine-readable result line:
//
//	RESULT,<weight>,<runtime_ms>
//
// Usage:
//
//	mwt [--algo brute|dogt|mstpoly|sa] [--seed N] [--csv-out FILE] <dataset_file>
//
// The dataset file holds a point count followed by that many x y pairs; the
// brute-force strategy additionally accepts the headerless "x,y per line"
// format. Exit code 1 on argument or input errors, 0 on success.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/planar/dataset"
	"github.com/katalvlaran/planar/geom"
	"github.com/katalvlaran/planar/mwt"
)

func main() {
	app := &cli.App{
		Name:      "mwt",
		Usage:     "minimum-weight triangulation of a planar point set",
		ArgsUsage: "<dataset_file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "algo",
				Usage: "algorithm: brute, dogt, mstpoly, or sa",
				Value: mwt.DTCESSA.String(),
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "RNG seed for the annealer (0 = fixed default stream)",
			},
			&cli.StringFlag{
				Name:  "csv-out",
				Usage: "write the brute-force result CSV to this file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log recoverable diagnostics to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: mwt [flags] <dataset_file>", 1)
	}

	algo, err := mwt.ParseAlgorithm(c.String("algo"))
	if err != nil {
		return cli.Exit(errors.Wrapf(err, "--algo %q", c.String("algo")).Error(), 1)
	}

	logger := zap.NewNop()
	if c.Bool("verbose") {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer func() { _ = logger.Sync() }()
	}

	pts, err := loadPoints(c.Args().First(), algo)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	// Too few points is a trivial zero result, not an error.
	if len(pts) < 3 {
		fmt.Println("RESULT,0,0")

		return nil
	}

	opts := mwt.DefaultOptions()
	opts.Algo = algo
	opts.Seed = c.Int64("seed")
	opts.Logger = logger

	res, err := mwt.Solve(pts, opts)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Println(dataset.FormatResult(res.Weight, res.Runtime))

	if out := c.String("csv-out"); out != "" && algo == mwt.BruteForce {
		if err := writeCSV(out, pts, res); err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	return nil
}

// loadPoints reads the count-header format; the brute-force strategy also
// accepts the headerless comma format, so fall back to it on a bad count.
func loadPoints(path string, algo mwt.Algorithm) ([]geom.Point, error) {
	pts, err := dataset.Load(path)
	if err == nil {
		return pts, nil
	}
	if algo == mwt.BruteForce && errors.Is(err, dataset.ErrBadCount) {
		return dataset.LoadCSV(path)
	}

	return nil, err
}

// writeCSV persists the brute-force edge list next to its weight and runtime.
func writeCSV(path string, pts []geom.Point, res mwt.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	defer f.Close()

	return dataset.WriteResultCSV(f, pts, res.Edges, res.Weight, res.Runtime)
}

// Package dataset - the brute-force CSV result writer.
package dataset

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/planar/geom"
)

// WriteResultCSV emits the brute-force result file: a metadata header, the
// point table, and the edge table.
//
//	Minimum Weight,<weight>
//	Runtime (seconds),<seconds>
//
//	Points:
//	index,x,y
//	...
//
//	Edges:
//	from,to
//	...
func WriteResultCSV(w io.Writer, pts []geom.Point, edges [][2]int, weight float64, runtime time.Duration) error {
	if _, err := fmt.Fprintf(w, "Minimum Weight,%g\nRuntime (seconds),%g\n\n", weight, runtime.Seconds()); err != nil {
		return errors.Wrap(err, "dataset: write header")
	}

	if _, err := fmt.Fprint(w, "Points:\nindex,x,y\n"); err != nil {
		return errors.Wrap(err, "dataset: write points header")
	}
	for i, p := range pts {
		if _, err := fmt.Fprintf(w, "%d,%g,%g\n", i, p.X, p.Y); err != nil {
			return errors.Wrap(err, "dataset: write point")
		}
	}

	if _, err := fmt.Fprint(w, "\nEdges:\nfrom,to\n"); err != nil {
		return errors.Wrap(err, "dataset: write edges header")
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "%d,%d\n", e[0], e[1]); err != nil {
			return errors.Wrap(err, "dataset: write edge")
		}
	}

	return nil
}

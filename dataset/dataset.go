// Package dataset handles the external data contracts of the toolkit: the
// two ASCII point-file formats, the RESULT line printed to stdout, and the
// brute-force CSV result file.
//
// Formats:
//
//   - Load: first token is the point count N ≥ 0, followed by N whitespace-
//     separated x y pairs. Newlines, tabs, and spaces are interchangeable.
//   - LoadCSV: one "x,y" pair per line, no count header (the alternative
//     format accepted by the brute-force binary).
//
// Encoding errors and missing data are fatal: loaders return sentinel errors
// wrapped with the offending file's context, and the CLI exits 1.
package dataset

import (
	"bufio"
	stderrors "errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/planar/geom"
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrBadCount indicates a missing, non-numeric, or negative point count.
	ErrBadCount = stderrors.New("dataset: invalid or missing coordinate count")

	// ErrBadCoordinate indicates a non-numeric or non-finite coordinate, or
	// fewer coordinates than the declared count.
	ErrBadCoordinate = stderrors.New("dataset: malformed or missing coordinate")
)

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Loaders
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// Load reads the count-header format: an integer N, then N x y pairs
// separated by arbitrary whitespace.
//
// Complexity: O(N).
func Load(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: open")
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Split(bufio.ScanWords)

	if !sc.Scan() {
		return nil, errors.Wrapf(ErrBadCount, "file %q", path)
	}
	count, err := strconv.Atoi(sc.Text())
	if err != nil || count < 0 {
		return nil, errors.Wrapf(ErrBadCount, "file %q: token %q", path, sc.Text())
	}

	pts := make([]geom.Point, 0, count)
	for i := 0; i < count; i++ {
		x, err := nextFloat(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "file %q: point %d", path, i)
		}
		y, err := nextFloat(sc)
		if err != nil {
			return nil, errors.Wrapf(err, "file %q: point %d", path, i)
		}

		p := geom.Point{X: x, Y: y}
		if !geom.IsFinite(p) {
			return nil, errors.Wrapf(ErrBadCoordinate, "file %q: point %d not finite", path, i)
		}
		pts = append(pts, p)
	}

	return pts, nil
}

// LoadCSV reads the headerless "x,y per line" format. Blank lines are
// skipped; anything else that does not parse as two comma-separated floats
// is fatal.
//
// Complexity: O(lines).
func LoadCSV(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "dataset: open")
	}
	defer f.Close()

	var pts []geom.Point
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		parts := strings.Split(text, ",")
		if len(parts) != 2 {
			return nil, errors.Wrapf(ErrBadCoordinate, "file %q: line %d", path, line)
		}
		x, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			return nil, errors.Wrapf(ErrBadCoordinate, "file %q: line %d", path, line)
		}

		p := geom.Point{X: x, Y: y}
		if !geom.IsFinite(p) {
			return nil, errors.Wrapf(ErrBadCoordinate, "file %q: line %d not finite", path, line)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "dataset: read")
	}

	return pts, nil
}

// nextFloat pulls one token and parses it as a float64.
func nextFloat(sc *bufio.Scanner) (float64, error) {
	if !sc.Scan() {
		return 0, ErrBadCoordinate
	}
	v, err := strconv.ParseFloat(sc.Text(), 64)
	if err != nil {
		return 0, errors.Wrapf(ErrBadCoordinate, "token %q", sc.Text())
	}

	return v, nil
}

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Result line
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// FormatResult renders the machine-readable stdout line:
//
//	RESULT,<weight>,<runtime_ms>
//
// with no trailing whitespace. The caller appends the newline.
func FormatResult(weight float64, runtime time.Duration) string {
	ms := float64(runtime.Nanoseconds()) / 1e6

	return "RESULT," +
		strconv.FormatFloat(weight, 'g', -1, 64) + "," +
		strconv.FormatFloat(ms, 'g', -1, 64)
}

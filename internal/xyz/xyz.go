// Package xyz reads and writes a minimal xyz-style coordinate file:
// optional count and comment header lines, then one particle per line
// as three whitespace-separated reals, optionally preceded by an
// element tag (ignored).
package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arpitban/ljmc/internal/geom"
)

// ErrMalformed indicates a coordinate line that could not be parsed.
var ErrMalformed = errors.New("xyz: malformed coordinate line")

// Read parses coordinates from r. Leading lines that do not parse as a
// coordinate line are skipped as header; once the first coordinate line
// is seen, every following non-blank line must parse or Read fails with
// ErrMalformed and the offending line number.
func Read(r io.Reader) ([]geom.Vec3, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	coords := make([]geom.Vec3, 0)
	inHeader := true
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, ok := parseLine(line)
		if !ok {
			if inHeader {
				continue
			}
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
		}
		inHeader = false
		coords = append(coords, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return coords, nil
}

// parseLine accepts "x y z" or "tag x y z".
func parseLine(line string) (geom.Vec3, bool) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 3:
	case 4:
		fields = fields[1:]
	default:
		return geom.Vec3{}, false
	}

	var v geom.Vec3
	for k, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geom.Vec3{}, false
		}
		v[k] = x
	}
	return v, true
}

func ReadFile(path string) ([]geom.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write emits a count line, the comment, then one "LJ x y z" row per
// coordinate. The output reads back through Read.
func Write(w io.Writer, comment string, coords []geom.Vec3) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(coords))
	fmt.Fprintln(bw, comment)
	for _, c := range coords {
		fmt.Fprintf(bw, "LJ %.12g %.12g %.12g\n", c[0], c[1], c[2])
	}
	return bw.Flush()
}

func WriteFile(path, comment string, coords []geom.Vec3) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, comment, coords)
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	steinerwire "github.com/vlsiroute/steinerwire"
	"github.com/vlsiroute/steinerwire/point"
)

// readInput parses the whitespace-separated text format the original
// buildNet reads: lower-left point, upper-right point, a point count,
// then that many points — all as plain decimal integers separated by
// arbitrary whitespace.
func readInput(path string) (steinerwire.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return steinerwire.Input{}, fmt.Errorf("readInput: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var in steinerwire.Input

	if _, err := fmt.Fscan(r, &in.Bounds.LB.X, &in.Bounds.LB.Y, &in.Bounds.RU.X, &in.Bounds.RU.Y); err != nil {
		return steinerwire.Input{}, fmt.Errorf("readInput: reading bounds: %w", err)
	}

	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return steinerwire.Input{}, fmt.Errorf("readInput: reading point count: %w", err)
	}
	if n < 0 {
		return steinerwire.Input{}, fmt.Errorf("readInput: negative point count %d", n)
	}

	in.Pins = make([]point.Point, 0, n)
	for i := 0; i < n; i++ {
		var p point.Point
		if _, err := fmt.Fscan(r, &p.X, &p.Y); err != nil {
			if err == io.EOF {
				return steinerwire.Input{}, fmt.Errorf("readInput: expected %d points, found %d", n, i)
			}
			return steinerwire.Input{}, fmt.Errorf("readInput: reading point %d: %w", i, err)
		}
		in.Pins = append(in.Pins, p)
	}

	return in, nil
}

// SPDX-License-Identifier: MIT

// Package gridio reads occupancy grids from YAML documents and plain text.
//
// Text format: one row per line, cells separated by whitespace or commas.
// Blank lines and anything after '#' are ignored.
//
//	1 0 1 1
//	1,1,1,0
//
// YAML format:
//
//	wall: "#"        # optional output wall marker
//	grid:
//	  - [1, 0, 1, 1]
//	  - [1, 1, 1, 0]
package gridio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sqtile/grid"
)

// ErrSyntax indicates a text or YAML grid that cannot be parsed.
var ErrSyntax = errors.New("gridio: syntax error")

// Layout is a parsed grid file.
type Layout struct {
	Grid *grid.Grid
	// Wall is the wall marker requested by the file, or "" if none.
	Wall string
}

// document mirrors the YAML file layout.
type document struct {
	Wall string  `yaml:"wall"`
	Grid [][]int `yaml:"grid"`
}

// Example returns the built-in 4×4 reference layout.
func Example() *grid.Grid {
	return grid.MustNew([][]int{
		{1, 0, 1, 1},
		{1, 1, 1, 0},
		{1, 1, 1, 1},
		{0, 0, 1, 1},
	})
}

// Load reads path, choosing YAML for .yaml/.yml and text otherwise.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var lay *Layout
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		lay, err = ParseYAML(data)
	default:
		lay, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lay, nil
}

// ParseYAML decodes a YAML grid document.
func ParseYAML(data []byte) (*Layout, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	g, err := grid.New(doc.Grid)
	if err != nil {
		return nil, err
	}

	return &Layout{Grid: g, Wall: doc.Wall}, nil
}

// ParseText reads the whitespace/comma separated text format.
func ParseText(r io.Reader) (*Layout, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.FieldsFunc(text, func(c rune) bool {
			return c == ',' || c == ' ' || c == '\t' || c == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d field %d: %q is not an integer", ErrSyntax, line, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	g, err := grid.New(rows)
	if err != nil {
		return nil, err
	}

	return &Layout{Grid: g}, nil
}

// FormatText writes g in the text format accepted by ParseText.
func FormatText(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if c > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(g.Value(r, c)))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// SPDX-License-Identifier: MIT

package tiling

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ValidateWallMarker returns ErrInvalidMarker unless m is non-empty, free of
// whitespace and not parseable as an integer.
func ValidateWallMarker(m string) error {
	if m == "" || strings.IndexFunc(m, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%q: %w", m, ErrInvalidMarker)
	}
	if _, err := strconv.Atoi(m); err == nil {
		return fmt.Errorf("%q: %w", m, ErrInvalidMarker)
	}

	return nil
}

// Render writes one line per row, cells separated by single spaces, Wall
// cells as wall and labels in decimal.
func (r *Result) Render(w io.Writer, wall string) error {
	if err := ValidateWallMarker(wall); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, row := range r.labels {
		for c, v := range row {
			if c > 0 {
				bw.WriteByte(' ')
			}
			if v == Wall {
				bw.WriteString(wall)
			} else {
				bw.WriteString(strconv.Itoa(v))
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String renders the result with DefaultWallMarker.
func (r *Result) String() string {
	var sb strings.Builder
	_ = r.Render(&sb, DefaultWallMarker)

	return sb.String()
}

// WriteTo implements io.WriterTo using DefaultWallMarker.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())

	return int64(n), err
}

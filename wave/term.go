// Copyright 2026 mhg42
// Licensed under the MIT license. See license text in the LICENSE file.

package wave

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ls "github.com/mhg42/logicsim"
	"github.com/pkg/errors"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	hiStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	loStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type signal struct {
	label string
	bit   func(ls.AdderResult) ls.Bit
}

// Draw writes a textual waveform of the sum bits and carry out to w, one
// signal row per line, two cells per cycle.
//
func Draw(w io.Writer, results []ls.AdderResult) error {
	var rows []signal
	for i := 0; i < sumWidth(results); i++ {
		i := i
		rows = append(rows, signal{
			label: fmt.Sprintf("sum[%d]", i),
			bit:   func(r ls.AdderResult) ls.Bit { return r.Sum[i] },
		})
	}
	rows = append(rows, signal{
		label: "cout",
		bit:   func(r ls.AdderResult) ls.Bit { return r.Cout },
	})

	for _, row := range rows {
		var sb strings.Builder
		for _, r := range results {
			if row.bit(r).On() {
				sb.WriteString(hiStyle.Render("▔▔"))
			} else {
				sb.WriteString(loStyle.Render("▁▁"))
			}
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%7s", row.label)), sb.String()); err != nil {
			return errors.Wrap(err, "draw waveform")
		}
	}
	return nil
}

// Table writes the testbench result table to w, one row per cycle with the
// operands and sum in decimal and binary.
//
func Table(w io.Writer, vectors []ls.Vector, results []ls.AdderResult) error {
	if len(vectors) != len(results) {
		return errors.Wrapf(ls.ErrInvalidInput, "%d vectors but %d results", len(vectors), len(results))
	}
	if _, err := fmt.Fprintln(w, " t |   A    B |  SUM |  bits: A  +  B  =  SUM   | cout"); err != nil {
		return errors.Wrap(err, "write table")
	}
	if _, err := fmt.Fprintln(w, "---+----------+------+--------------------------+-----"); err != nil {
		return errors.Wrap(err, "write table")
	}
	for t, r := range results {
		a, b := vectors[t].A, vectors[t].B
		_, err := fmt.Fprintf(w, "%2d | %3d  %3d | %4d |  %s + %s = %s  |  %v\n",
			t, a.Uint(), b.Uint(), r.Sum.Uint(), a, b, r.Sum, r.Cout)
		if err != nil {
			return errors.Wrap(err, "write table")
		}
	}
	return nil
}

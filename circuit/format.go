// SPDX-License-Identifier: MIT

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spdsolve/matrix"
)

const (
	opParse  = "Parse"
	opEncode = "Encode"

	// maxLineBytes bounds one incidence row; a 100×50 mesh needs ~80 KiB.
	maxLineBytes = 16 << 20

	// maxCells bounds nodes×branches of the incidence matrix.
	maxCells = 1 << 26
)

// lineReader yields the non-blank lines of r with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the fields of the next non-blank line, or io.ErrUnexpectedEOF.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		if fields := strings.Fields(lr.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, err
	}

	return nil, io.ErrUnexpectedEOF
}

// Parse reads a circuit in the text format described in the package doc.
// Blank lines are skipped; anything after the last branch line is ignored.
//
// Errors:
//   - ErrMalformed (header, field counts, numbers, early end of input),
//     ErrBadIncidence, ErrZeroResistance, or the reader's own error.
func Parse(r io.Reader) (*Description, error) {
	lr := newLineReader(r)

	fields, err := lr.next()
	if err != nil {
		return nil, parseErr(lr, err)
	}
	if len(fields) != 2 {
		return nil, parseErr(lr, fmt.Errorf("header wants 2 fields, got %d: %w", len(fields), ErrMalformed))
	}
	nodes, err := parseCount(fields[0])
	if err != nil {
		return nil, parseErr(lr, err)
	}
	branches, err := parseCount(fields[1])
	if err != nil {
		return nil, parseErr(lr, err)
	}
	// Each incidence entry takes at least two bytes of its row.
	if branches > maxLineBytes/2 || nodes > maxCells/branches {
		return nil, parseErr(lr, fmt.Errorf("header %d×%d too large: %w", nodes, branches, ErrMalformed))
	}

	a, err := matrix.NewDense(nodes, branches)
	if err != nil {
		return nil, parseErr(lr, err)
	}
	var i, k int
	var v int64
	for i = 0; i < nodes; i++ {
		if fields, err = lr.next(); err != nil {
			return nil, parseErr(lr, err)
		}
		if len(fields) != branches {
			return nil, parseErr(lr, fmt.Errorf("incidence row wants %d fields, got %d: %w", branches, len(fields), ErrMalformed))
		}
		for k = 0; k < branches; k++ {
			if v, err = strconv.ParseInt(fields[k], 10, 8); err != nil {
				return nil, parseErr(lr, fmt.Errorf("branch %d: %q: %w", k, fields[k], ErrMalformed))
			}
			if v < -1 || v > 1 {
				return nil, parseErr(lr, fmt.Errorf("branch %d: %d: %w", k, v, ErrBadIncidence))
			}
			if err = a.Set(i, k, float64(v)); err != nil {
				return nil, parseErr(lr, err)
			}
		}
	}

	j := make([]float64, branches)
	res := make([]float64, branches)
	e := make([]float64, branches)
	for k = 0; k < branches; k++ {
		if fields, err = lr.next(); err != nil {
			return nil, parseErr(lr, err)
		}
		if len(fields) != 3 {
			return nil, parseErr(lr, fmt.Errorf("branch line wants 3 fields (J R E), got %d: %w", len(fields), ErrMalformed))
		}
		for idx, dst := range []*float64{&j[k], &res[k], &e[k]} {
			if *dst, err = strconv.ParseFloat(fields[idx], 64); err != nil {
				return nil, parseErr(lr, fmt.Errorf("branch %d: %q: %w", k, fields[idx], ErrMalformed))
			}
		}
		if err = checkBranch(k, j[k], res[k], e[k]); err != nil {
			return nil, parseErr(lr, err)
		}
	}

	return &Description{incidence: a, current: j, resist: res, voltage: e}, nil
}

// parseCount reads a strictly positive node or branch count.
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("count %q must be a positive integer: %w", s, ErrMalformed)
	}

	return n, nil
}

// parseErr tags err with the current line; end of input becomes ErrMalformed.
func parseErr(lr *lineReader, err error) error {
	if err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%s: line %d: unexpected end of input: %w", opParse, lr.line, ErrMalformed)
	}

	return fmt.Errorf("%s: line %d: %w", opParse, lr.line, err)
}

// Encode writes d in the text format read by Parse. Every line, the last
// included, ends with '\n'; numbers use the shortest exact representation.
func (d *Description) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	nodes, branches := d.Nodes(), d.Branches()
	raw := d.incidence.Raw()

	fmt.Fprintf(bw, "%d %d\n", nodes, branches)
	var i, k int
	for i = 0; i < nodes; i++ {
		for k = 0; k < branches; k++ {
			if k > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(int(raw[i*branches+k])))
		}
		bw.WriteByte('\n')
	}
	for k = 0; k < branches; k++ {
		bw.WriteString(formatFloat(d.current[k]))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(d.resist[k]))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(d.voltage[k]))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}

	return nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

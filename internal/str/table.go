//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"errors"
	"fmt"
)

var ErrMissingColumn = errors.New("missing column")

// Table - a flat upstream artifact: a header and rows of string cells
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

func (t Table) Len() int {
	return len(t.Rows)
}

// Index - position of a column in the header or -1
func (t Table) Index(col string) int {
	for i, h := range t.Header {
		if h == col {
			return i
		}
	}
	return -1
}

// Head - a copy of the table trimmed to the first n rows
func (t Table) Head(n int) Table {
	if n < 0 {
		n = 0
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	h := Table{Name: t.Name, Header: append([]string(nil), t.Header...)}
	h.Rows = make([][]string, n)
	copy(h.Rows, t.Rows[:n])
	return h
}

// Column - every value of the named column, in row order
func (t Table) Column(col string) ([]string, error) {
	i := t.Index(col)
	if i < 0 {
		return nil, fmt.Errorf("%s: %w '%s'", t.Name, ErrMissingColumn, col)
	}
	vals := make([]string, len(t.Rows))
	for j, r := range t.Rows {
		vals[j] = cell(r, i)
	}
	return vals, nil
}

// Select - a new table holding only the named columns, in the order given
func (t Table) Select(cols ...string) (Table, error) {
	idx := make([]int, len(cols))
	for i, c := range cols {
		idx[i] = t.Index(c)
		if idx[i] < 0 {
			return Table{}, fmt.Errorf("%s: %w '%s'", t.Name, ErrMissingColumn, c)
		}
	}

	sel := Table{Name: t.Name, Header: append([]string(nil), cols...)}
	sel.Rows = make([][]string, len(t.Rows))
	for j, r := range t.Rows {
		nr := make([]string, len(idx))
		for k, i := range idx {
			nr[k] = cell(r, i)
		}
		sel.Rows[j] = nr
	}
	return sel, nil
}

// cell - ragged rows are padded with ""
func cell(r []string, i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

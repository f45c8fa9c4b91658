//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tbl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var ErrNotNumeric = errors.New("column is not numeric")

// CoherenceColumn - the configured column if it exists, otherwise the first header that looks like a coherence score
func CoherenceColumn(t str.Table, configured string) (string, bool) {
	if configured != "" {
		return configured, t.Index(configured) >= 0
	}
	for _, h := range t.Header {
		lh := strings.ToLower(h)
		for _, hint := range vv.COHERENCEHINTS {
			if strings.Contains(lh, hint) {
				return h, true
			}
		}
	}
	return "", false
}

// Describe - count, mean, sample std, min and max of a numeric column; blanks and NaN are skipped as pandas does
func Describe(t str.Table, col string) (str.Summary, error) {
	vals, err := t.Column(col)
	if err != nil {
		return str.Summary{}, err
	}

	var xx []float64
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" || strings.EqualFold(v, "nan") {
			continue
		}
		f, e := strconv.ParseFloat(v, 64)
		if e != nil {
			return str.Summary{}, fmt.Errorf("%s.%s: %w: '%s'", t.Name, col, ErrNotNumeric, v)
		}
		xx = append(xx, f)
	}

	s := str.Summary{Column: col, Count: len(xx)}
	if len(xx) == 0 {
		return s, nil
	}

	s.Mean, s.Std = stat.MeanStdDev(xx, nil)
	if len(xx) == 1 {
		s.Std = 0
	}
	s.Min = floats.Min(xx)
	s.Max = floats.Max(xx)
	return s, nil
}

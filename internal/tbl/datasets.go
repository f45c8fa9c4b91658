//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tbl

import (
	"fmt"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
)

// Results - the five artifacts behind the results page
type Results struct {
	Preproc   str.Table
	Embed     str.Table
	Coherence str.Table
	DocInfo   str.Table
	TopWords  str.Table
}

// RequiredFiles - in the order the results page shows them
func RequiredFiles() []string {
	return []string{vv.FILEPREPROC, vv.FILEEMBED, vv.FILECOHERENCE, vv.FILEDOCINFO, vv.FILETOPWORDS}
}

// LoadResults - read all five tables; the first failure aborts the lot
func LoadResults(src Source) (Results, error) {
	var r Results
	dst := []*str.Table{&r.Preproc, &r.Embed, &r.Coherence, &r.DocInfo, &r.TopWords}

	for i, fn := range RequiredFiles() {
		t, err := src.Load(fn)
		if err != nil {
			return Results{}, fmt.Errorf("loading %s from %s: %w", fn, src, err)
		}
		*dst[i] = t
	}
	return r, nil
}

// LoadOne - a single artifact; used by the routes that only need one table
func LoadOne(src Source, fn string) (str.Table, error) {
	t, err := src.Load(fn)
	if err != nil {
		return str.Table{}, fmt.Errorf("loading %s from %s: %w", fn, src, err)
	}
	return t, nil
}

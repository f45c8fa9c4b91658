//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"
	"time"

	"github.com/e-gun/BERTopicBoard/internal/lnch"
	"github.com/e-gun/BERTopicBoard/internal/mm"
	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/tbl"
	"github.com/e-gun/BERTopicBoard/internal/trnd"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/e-gun/BERTopicBoard/web"
	"github.com/pkg/profile"
)

func main() {
	// go tool pprof --pdf ./btb /var/folders/d8/_gb2lcbn0klg22g_cbwcxgmh0000gn/T/profile1880749830/cpu.pprof > profile.pdf
	root := lnch.NewRootCommand(serve, check)
	if err := root.Execute(); err != nil {
		lnch.Msg.EF(err, "main()")
	}
}

// serve - print the preliminaries and then block inside echo
func serve(cc *str.CurrentConfiguration) error {
	switch {
	case cc.ProfileCPU:
		defer profile.Start().Stop()
	case cc.ProfileMEM:
		defer profile.Start(profile.MemProfile).Stop()
	}

	lnch.PrintCopyright(*cc)
	lnch.PrintVersion(*cc)
	lnch.PrintBuildInfo(*cc)

	if _, err := tbl.LoadResults(tbl.NewSource(cc)); err != nil {
		// not fatal: the files might show up later and every request reads them afresh
		lnch.Msg.WARN(fmt.Sprintf("the results page will fail until this is fixed: %s", err.Error()))
	}

	return web.StartEchoServer()
}

// check - load every table once, count things, and report
func check(cc *str.CurrentConfiguration) error {
	const (
		ROWS = "C2%sC0: %d rows, %d columns"
		DOCS = "C2%dC0 documents over C2%dC0 dates; top topics: %v"
		COH  = "C2%sC0: mean %.4f (std %.4f, min %.4f, max %.4f)"
	)

	start := time.Now()
	previous := time.Now()

	src := tbl.NewSource(cc)
	res, err := tbl.LoadResults(src)
	if err != nil {
		return err
	}
	lnch.Msg.Timer("C1", "loaded "+src.String(), start, previous)

	for _, t := range []str.Table{res.Preproc, res.Embed, res.Coherence, res.DocInfo, res.TopWords} {
		lnch.Msg.MAND(lnch.Msg.Color(fmt.Sprintf(ROWS, t.Name, t.Len(), len(t.Header))))
	}

	if _, err = res.Preproc.Select(vv.PREPROCCOLUMNS...); err != nil {
		return err
	}

	previous = time.Now()
	tr, err := trnd.BuildTrends(res.DocInfo, cc.TopTopics)
	if err != nil {
		return err
	}
	lnch.Msg.Timer("C2", "trends counted", start, previous)
	lnch.Msg.MAND(lnch.Msg.Color(fmt.Sprintf(DOCS, tr.Total, len(tr.ByDate), tr.Top)))

	if col, ok := tbl.CoherenceColumn(res.Coherence, cc.CoherenceCol); ok {
		if s, e := tbl.Describe(res.Coherence, col); e == nil {
			lnch.Msg.MAND(lnch.Msg.Color(fmt.Sprintf(COH, s.Column, s.Mean, s.Std, s.Min, s.Max)))
		} else {
			lnch.Msg.Emit(e.Error(), mm.MSGWARN)
		}
	}
	return nil
}

//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"time"

	"github.com/e-gun/BERTopicBoard/internal/chrt"
	"github.com/e-gun/BERTopicBoard/internal/lnch"
	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/tbl"
	"github.com/e-gun/BERTopicBoard/internal/trnd"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/e-gun/BERTopicBoard/internal/wcld"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//
// PAGE ASSEMBLY
//

const (
	LAYOUTHTML  = "emb/html/layout.html"
	HOMEHTML    = "emb/html/home.html"
	RESULTSHTML = "emb/html/results.html"
	PAGETMPL    = "layout"
)

// the corpus is Indonesian; so are the numbers: "1.893" and "0,5123"
var numfmt = message.NewPrinter(language.Indonesian)

type navitem struct {
	Label   string
	Current bool
}

// pageframe - what the layout template needs whatever the page
type pageframe struct {
	Title     string
	AppName   string
	Version   string
	Pages     []navitem
	Charts    bool
	EChartsJS string
}

type homeview struct {
	pageframe
	DetikURL    string
	BERTopicURL string
	ImageURL    string
	ImageWidth  int
}

type tableview struct {
	Header []string
	Rows   [][]string
}

type summaryview struct {
	Column string
	Count  string
	Mean   string
	Std    string
	Min    string
	Max    string
}

type resultsview struct {
	pageframe
	Preproc     tableview
	Embed       tableview
	Coherence   tableview
	Summary     *summaryview
	DocInfo     tableview
	Total       string
	CloudURI    template.URL
	CloudWidth  int
	CloudHeight int
	ByDate      template.HTML
	ByTopic     template.HTML
}

func newframe(title string, p Page) pageframe {
	return pageframe{
		Title:     title,
		AppName:   vv.MYNAME,
		Version:   vv.VERSION + lnch.VersSuppl,
		Pages:     sidebar(p),
		EChartsJS: chrt.EChartsJS(lnch.Config.AssetsHost),
	}
}

// RenderHome - static prose, the methodology list, the illustration and the outbound link
func RenderHome() (string, error) {
	const (
		TITLE = "Home Page"
		IMG   = "/emb/images/"
	)

	hv := homeview{
		pageframe:   newframe(TITLE, PageHome),
		DetikURL:    vv.DETIKURL,
		BERTopicURL: vv.BERTOPICURL,
		ImageURL:    IMG + vv.HOMEIMAGE,
		ImageWidth:  vv.HOMEIMAGEWIDTH,
	}
	return execpage(HOMEHTML, hv)
}

// RenderResults - load everything, build everything, and only then hand back the page
func RenderResults(src tbl.Source) (string, error) {
	const (
		TITLE = "BERTopic Page"
	)

	start := time.Now()
	previous := time.Now()

	res, err := tbl.LoadResults(src)
	if err != nil {
		return "", err
	}
	Msg.Timer("R1", "tables loaded from "+src.String(), start, previous)
	previous = time.Now()

	cfg := lnch.Config
	rv := resultsview{
		pageframe:   newframe(TITLE, PageResults),
		CloudWidth:  cfg.CloudWidth,
		CloudHeight: cfg.CloudHeight,
	}
	rv.Charts = true

	pp, err := res.Preproc.Select(vv.PREPROCCOLUMNS...)
	if err != nil {
		return "", err
	}
	rv.Preproc = preview(pp, cfg.PreviewRows)
	rv.Embed = preview(res.Embed, cfg.PreviewRows)
	rv.Coherence = preview(res.Coherence, cfg.PreviewRows)
	rv.DocInfo = preview(res.DocInfo, cfg.PreviewRows)
	rv.Summary = coherencesummary(res.Coherence, cfg.CoherenceCol)

	cloud, err := wordcloud(res.TopWords, cfg)
	if err != nil {
		return "", err
	}
	rv.CloudURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(cloud))
	Msg.Timer("R2", "word cloud drawn", start, previous)
	previous = time.Now()

	tr, err := trnd.BuildTrends(res.DocInfo, cfg.TopTopics)
	if err != nil {
		return "", err
	}
	rv.Total = numfmt.Sprintf("%d", tr.Total)

	bd, err := chrt.ByDateChart(tr.ByDate, cfg.AssetsHost)
	if err != nil {
		return "", err
	}
	bt, err := chrt.ByTopicChart(tr.TopSeries, cfg.TopTopics, cfg.AssetsHost)
	if err != nil {
		return "", err
	}
	rv.ByDate = template.HTML(bd)
	rv.ByTopic = template.HTML(bt)
	Msg.Timer("R3", "trend charts built", start, previous)

	return execpage(RESULTSHTML, rv)
}

// execpage - layout plus one page file; the html is complete before anyone sees it
func execpage(page string, data any) (string, error) {
	var ff []string
	for _, fn := range []string{LAYOUTHTML, page} {
		b, err := efs.ReadFile(fn)
		if err != nil {
			return "", err
		}
		ff = append(ff, string(b))
	}

	tpl := template.New(PAGETMPL)
	for _, f := range ff {
		var err error
		if tpl, err = tpl.Parse(f); err != nil {
			return "", err
		}
	}

	var b bytes.Buffer
	if err := tpl.ExecuteTemplate(&b, PAGETMPL, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func preview(t str.Table, n int) tableview {
	h := t.Head(n)
	return tableview{Header: h.Header, Rows: h.Rows}
}

// coherencesummary - nil if there is nothing to summarize; that is not an error
func coherencesummary(t str.Table, configured string) *summaryview {
	col, ok := tbl.CoherenceColumn(t, configured)
	if !ok {
		Msg.PEEK(fmt.Sprintf("no coherence column in %s", t.Name))
		return nil
	}

	s, err := tbl.Describe(t, col)
	if err != nil {
		Msg.NOTE(err.Error())
		return nil
	}

	return &summaryview{
		Column: s.Column,
		Count:  numfmt.Sprintf("%d", s.Count),
		Mean:   numfmt.Sprintf("%.4f", s.Mean),
		Std:    numfmt.Sprintf("%.4f", s.Std),
		Min:    numfmt.Sprintf("%.4f", s.Min),
		Max:    numfmt.Sprintf("%.4f", s.Max),
	}
}

// wordcloud - the words column joined with spaces and drawn
func wordcloud(topwords str.Table, cfg *str.CurrentConfiguration) ([]byte, error) {
	words, err := topwords.Column(vv.COLTOPWORDS)
	if err != nil {
		return nil, err
	}

	opt := wcld.Options{
		Width:      cfg.CloudWidth,
		Height:     cfg.CloudHeight,
		MaxWords:   cfg.CloudMaxWords,
		Background: vv.CLOUDBACKGROUND,
	}
	b, err := wcld.RenderPNG(wcld.JoinWords(words), opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", topwords.Name, err)
	}
	return b, nil
}

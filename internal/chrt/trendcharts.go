//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chrt

import (
	"bytes"
	"fmt"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

//
// INTERACTIVE TREND CHARTS
//

const (
	TITLEBYDATE  = "Trend Pemberitaan Berdasarkan Tanggal"
	TITLEBYTOPIC = "Trend Pemberitaan Berdasarkan Tanggal untuk %d Topik Utama"
	XNAME        = "Tanggal"
	YNAME        = "Jumlah Dokumen"
	IDBYDATE     = "trendbydate"
	IDBYTOPIC    = "trendbytopic"
	ALLDOCS      = "Jumlah Dokumen"
)

// ByDateChart - the html+js for the "documents per date" line chart
func ByDateChart(bd []str.DateCount, assets string) (string, error) {
	l := newtrendline(TITLEBYDATE, IDBYDATE, assets, false)
	l.AddSeries(ALLDOCS, linedata(bd), charts.WithLabelOpts(opts.Label{Show: false}))
	return snippet(l)
}

// ByTopicChart - the html+js for the "documents per date per topic" line chart; one line per topic;
// topn is the number of topics asked for, which the title names even if fewer exist
func ByTopicChart(series []str.Series, topn int, assets string) (string, error) {
	l := newtrendline(TopicTitle(topn), IDBYTOPIC, assets, true)
	for _, s := range series {
		l.AddSeries(s.Name, linedata(s.Points))
	}
	return snippet(l)
}

func TopicTitle(topn int) string {
	return fmt.Sprintf(TITLEBYTOPIC, topn)
}

// linedata - echarts wants [x, y] pairs on a time axis
func linedata(pts []str.DateCount) []opts.LineData {
	ld := make([]opts.LineData, len(pts))
	for i, p := range pts {
		ld[i] = opts.LineData{Value: []interface{}{p.Date.Format("2006-01-02"), p.Count}}
	}
	return ld
}

// newtrendline - return a pre-formatted charts.Line with a time x axis
func newtrendline(title string, id string, assets string, legend bool) *charts.Line {
	const (
		CHRTWIDTH  = "900px"
		CHRTHEIGHT = "500px"
		TIMEAXIS   = "time"
		VALAXIS    = "value"
		DATEFMT    = "{dd}-{MM}-{yyyy}"
		ROTATE     = 45
		TRIGGER    = "axis"
		LEGENDTOP  = "bottom"
		GRIDBOTTOM = "22%"
	)

	ln := charts.NewLine()
	ln.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:      CHRTWIDTH,
			Height:     CHRTHEIGHT,
			ChartID:    id,
			AssetsHost: assets,
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: TRIGGER}),
		charts.WithLegendOpts(opts.Legend{Show: legend, Top: LEGENDTOP}),
		charts.WithGridOpts(opts.Grid{Bottom: GRIDBOTTOM}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      XNAME,
			Type:      TIMEAXIS,
			AxisLabel: &opts.AxisLabel{Show: true, Rotate: ROTATE, Formatter: DATEFMT},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: YNAME,
			Type: VALAXIS,
		}),
	)
	return ln
}

// snippet - a page with only one chart, rendered by hand to yield html+js that drops into a template
func snippet(ln *charts.Line) (string, error) {
	ln.Validate()

	p := components.NewPage()
	p.SetLayout(components.PageNoneLayout)
	p.Renderer = NewCustomPageRender(p, p.Validate)

	assets := ln.GetAssets()
	for _, v := range assets.JSAssets.Values {
		p.JSAssets.Add(v)
	}

	p.Charts = append(p.Charts, ln)
	p.Validate()

	var buf bytes.Buffer
	if err := p.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// EChartsJS - where the browser fetches echarts from
func EChartsJS(assets string) string {
	if assets == "" {
		assets = vv.ASSETSHOST
	}
	return assets + "echarts.min.js"
}

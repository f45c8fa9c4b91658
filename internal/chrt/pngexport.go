//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chrt

import (
	"bytes"
	"errors"
	"time"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

//
// STATIC PNG VERSIONS OF THE TREND CHARTS
//

const (
	PNGWIDTH  = 1024
	PNGHEIGHT = 512
)

var ErrNoPoints = errors.New("nothing to plot")

// the echarts default palette, so the png and the interactive chart agree
var linecolors = []drawing.Color{
	drawing.ColorFromHex("5470c6"),
	drawing.ColorFromHex("91cc75"),
	drawing.ColorFromHex("fac858"),
	drawing.ColorFromHex("ee6666"),
	drawing.ColorFromHex("73c0de"),
	drawing.ColorFromHex("3ba272"),
	drawing.ColorFromHex("fc8452"),
	drawing.ColorFromHex("9a60b4"),
}

// ByDatePNG - documents per date as a png
func ByDatePNG(bd []str.DateCount) ([]byte, error) {
	return linepng(TITLEBYDATE, []str.Series{{Name: ALLDOCS, Points: bd}}, false)
}

// ByTopicPNG - one line per topic as a png
func ByTopicPNG(series []str.Series, topn int) ([]byte, error) {
	return linepng(TopicTitle(topn), series, true)
}

// timeseries - go-chart refuses a series with a single x value: pad it with a twin one second later
func timeseries(s str.Series, col drawing.Color) chart.TimeSeries {
	xx := make([]time.Time, len(s.Points))
	yy := make([]float64, len(s.Points))
	for i, p := range s.Points {
		xx[i] = p.Date
		yy[i] = float64(p.Count)
	}

	if len(xx) == 1 {
		xx = append(xx, xx[0].Add(1*time.Second))
		yy = append(yy, yy[0])
	}

	return chart.TimeSeries{
		Name:    s.Name,
		XValues: xx,
		YValues: yy,
		Style: chart.Style{
			StrokeColor: col,
			StrokeWidth: 2,
			DotColor:    col,
			DotWidth:    3,
		},
	}
}

func linepng(title string, series []str.Series, legend bool) ([]byte, error) {
	var cs []chart.Series
	top := 0
	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		cs = append(cs, timeseries(s, linecolors[i%len(linecolors)]))
		for _, p := range s.Points {
			top = max(top, p.Count)
		}
	}

	if len(cs) == 0 {
		return nil, ErrNoPoints
	}

	ch := chart.Chart{
		Title:      title,
		Width:      PNGWIDTH,
		Height:     PNGHEIGHT,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:           XNAME,
			ValueFormatter: chart.TimeValueFormatterWithFormat(vv.DATELABELFORMAT),
		},
		YAxis: chart.YAxis{
			Name: YNAME,
			// a flat line would otherwise give a zero-height range
			Range: &chart.ContinuousRange{Min: 0, Max: float64(top + 1)},
		},
		Series: cs,
	}

	if legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

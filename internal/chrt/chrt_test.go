package chrt

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pts(counts ...int) []str.DateCount {
	out := make([]str.DateCount, len(counts))
	for i, c := range counts {
		out[i] = str.DateCount{Date: time.Date(2023, time.September, i+1, 0, 0, 0, 0, time.UTC), Count: c}
	}
	return out
}

func TestByDateChart(t *testing.T) {
	h, err := ByDateChart(pts(5, 9, 6), "https://example.org/assets/")
	require.NoError(t, err)

	assert.Contains(t, h, `id="trendbydate"`)
	assert.Contains(t, h, "echarts.init")
	assert.Contains(t, h, TITLEBYDATE)
	assert.Contains(t, h, "2023-09-02")
	assert.Contains(t, h, "{dd}-{MM}-{yyyy}")
	assert.Contains(t, h, `"rotate":45`)
	assert.Contains(t, h, `"trigger":"axis"`)
	assert.NotContains(t, h, "<html")
	assert.NotContains(t, h, "__f__")
}

func TestByTopicChart(t *testing.T) {
	series := []str.Series{
		{Name: "0_kpu_pemilu_suara", Points: pts(1, 2)},
		{Name: "1_anies_muhaimin_amin", Points: pts(3)},
	}
	h, err := ByTopicChart(series, 5, "")
	require.NoError(t, err)
	assert.Contains(t, h, `id="trendbytopic"`)
	assert.Contains(t, h, "0_kpu_pemilu_suara")
	assert.Contains(t, h, "1_anies_muhaimin_amin")
	assert.Contains(t, h, "Trend Pemberitaan Berdasarkan Tanggal untuk 5 Topik Utama")

	h, err = ByTopicChart(series, 3, "")
	require.NoError(t, err)
	assert.Contains(t, h, "untuk 3 Topik Utama")
}

func TestByTopicChartEmpty(t *testing.T) {
	h, err := ByTopicChart(nil, 5, "")
	require.NoError(t, err)
	assert.Contains(t, h, `id="trendbytopic"`)
}

func TestChartLabelsCannotCloseTheScript(t *testing.T) {
	hostile := "</script><script>alert(1)</script>"
	h, err := ByTopicChart([]str.Series{{Name: hostile, Points: pts(1, 2)}, {Name: "a & b", Points: pts(3)}}, 5, "")
	require.NoError(t, err)

	assert.NotContains(t, h, hostile)
	assert.Equal(t, 1, strings.Count(h, "</script>"), "only the chart's own closing tag")
	assert.Contains(t, h, `\u003c/script\u003e\u003cscript\u003ealert(1)\u003c/script\u003e`)
	assert.Contains(t, h, `a \u0026 b`)
}

func TestEChartsJS(t *testing.T) {
	assert.Equal(t, "https://example.org/echarts.min.js", EChartsJS("https://example.org/"))
	assert.Contains(t, EChartsJS(""), "echarts.min.js")
}

func TestPNGs(t *testing.T) {
	b, err := ByDatePNG(pts(5, 9, 6))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, PNGWIDTH, img.Bounds().Dx())
	assert.Equal(t, PNGHEIGHT, img.Bounds().Dy())

	// a lone point and a flat line are both drawable
	b, err = ByTopicPNG([]str.Series{{Name: "a", Points: pts(4)}, {Name: "b", Points: pts(2, 2)}}, 5)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestPNGNothingToPlot(t *testing.T) {
	_, err := ByDatePNG(nil)
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = ByTopicPNG([]str.Series{{Name: "empty"}}, 5)
	assert.ErrorIs(t, err, ErrNoPoints)
}

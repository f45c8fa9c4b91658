//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/e-gun/BERTopicBoard/internal/chrt"
	"github.com/e-gun/BERTopicBoard/internal/lnch"
	"github.com/e-gun/BERTopicBoard/internal/tbl"
	"github.com/e-gun/BERTopicBoard/internal/trnd"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/labstack/echo/v4"
)

//
// PNG VERSIONS OF THE RESULTS PAGE GRAPHICS
//

const (
	PNGMIME = "image/png"
)

// RtTrendByDatePNG - "/proses/trend/date.png"
func RtTrendByDatePNG(c echo.Context) error {
	Msg.LogPaths("RtTrendByDatePNG()")
	tr, err := freshtrends()
	if err != nil {
		return failimage("RtTrendByDatePNG()", err)
	}
	b, err := chrt.ByDatePNG(tr.ByDate)
	if err != nil {
		return failimage("RtTrendByDatePNG()", err)
	}
	return c.Blob(http.StatusOK, PNGMIME, b)
}

// RtTrendByTopicPNG - "/proses/trend/topics.png"
func RtTrendByTopicPNG(c echo.Context) error {
	Msg.LogPaths("RtTrendByTopicPNG()")
	tr, err := freshtrends()
	if err != nil {
		return failimage("RtTrendByTopicPNG()", err)
	}
	b, err := chrt.ByTopicPNG(tr.TopSeries, lnch.Config.TopTopics)
	if err != nil {
		return failimage("RtTrendByTopicPNG()", err)
	}
	return c.Blob(http.StatusOK, PNGMIME, b)
}

// RtWordCloudPNG - "/proses/wordcloud.png"
func RtWordCloudPNG(c echo.Context) error {
	Msg.LogPaths("RtWordCloudPNG()")
	tw, err := tbl.LoadOne(tbl.NewSource(lnch.Config), vv.FILETOPWORDS)
	if err != nil {
		return failimage("RtWordCloudPNG()", err)
	}
	b, err := wordcloud(tw, lnch.Config)
	if err != nil {
		return failimage("RtWordCloudPNG()", err)
	}
	return c.Blob(http.StatusOK, PNGMIME, b)
}

// freshtrends - reread document_info and count
func freshtrends() (trnd.Trends, error) {
	di, err := tbl.LoadOne(tbl.NewSource(lnch.Config), vv.FILEDOCINFO)
	if err != nil {
		return trnd.Trends{}, err
	}
	return trnd.BuildTrends(di, lnch.Config.TopTopics)
}

// failimage - an empty chart is a 404; anything else went wrong on our side
func failimage(fn string, err error) error {
	Msg.WARN(fmt.Sprintf("%s failed: %s", fn, err.Error()))
	if errors.Is(err, chrt.ErrNoPoints) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/e-gun/BERTopicBoard/internal/lnch"
	"github.com/e-gun/BERTopicBoard/internal/tbl"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/labstack/echo/v4"
)

//
// PAGE ROUTER
//

type Page int

const (
	PageHome Page = iota
	PageResults
)

var ErrUnknownPage = errors.New("unknown page")

// the sidebar offers these, in this order; the first is the default
var pagelabels = []string{vv.PAGEHOME, vv.PAGERESULTS}

func (p Page) String() string {
	return pagelabels[p]
}

// ParsePage - "Home" or "Proses"; nothing at all means "Home"
func ParsePage(label string) (Page, error) {
	switch strings.TrimSpace(label) {
	case "", vv.PAGEHOME:
		return PageHome, nil
	case vv.PAGERESULTS:
		return PageResults, nil
	default:
		return PageHome, fmt.Errorf("%w: '%s'", ErrUnknownPage, label)
	}
}

// RtPage - "/?page=Proses"
func RtPage(c echo.Context) error {
	p, err := ParsePage(c.QueryParam(vv.PAGEPARAM))
	if err != nil {
		Msg.FYI(err.Error())
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}

	switch p {
	case PageResults:
		return RtResults(c)
	default:
		return RtHome(c)
	}
}

// RtHome - send the html for the home page
func RtHome(c echo.Context) error {
	Msg.LogPaths("RtHome()")
	h, err := RenderHome()
	if err != nil {
		Msg.WARN(fmt.Sprintf("RtHome() failed: %s", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, h)
}

// RtResults - send the html for the results page; nothing is sent unless every part of the page was built
func RtResults(c echo.Context) error {
	Msg.LogPaths("RtResults()")
	h, err := RenderResults(tbl.NewSource(lnch.Config))
	if err != nil {
		Msg.WARN(fmt.Sprintf("RtResults() failed: %s", err.Error()))
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.HTML(http.StatusOK, h)
}

// sidebar - the radio buttons with the current page checked
func sidebar(current Page) []navitem {
	nn := make([]navitem, len(pagelabels))
	for i, l := range pagelabels {
		nn[i] = navitem{Label: l, Current: Page(i) == current}
	}
	return nn
}

//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/e-gun/BERTopicBoard/internal/lnch"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	Msg = lnch.NewMessageMakerConfigured()
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() error {
	lnch.UpdateMessageMakerWithConfig(Msg)
	e := NewEchoServer()
	Msg.MAND(fmt.Sprintf(Msg.Color("serving C2%s:%dC0 from C3%sC0"), lnch.Config.HostIP, lnch.Config.HostPort, lnch.DataSource(*lnch.Config)))
	return e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort))
}

// NewEchoServer - build the server and its routes without starting it
func NewEchoServer() *echo.Echo {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${id}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		last := ua[len(ua)-1]
		return buf.WriteString(last)
	}

	//
	// SETUP
	//

	e := echo.New()

	e.Server.ReadTimeout = vv.TIMEOUTRD
	e.Server.WriteTimeout = vv.TIMEOUTWR

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))

	switch lnch.Config.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// ROUTES
	//

	//
	// [a] pages ("rt-pages.go")
	//

	e.GET("/", RtPage)          // "u: /?page=Proses"
	e.GET("/home", RtHome)      // "u: /home"
	e.GET("/proses", RtResults) // "u: /proses"

	//
	// [b] images ("rt-images.go")
	//

	e.GET("/proses/trend/date.png", RtTrendByDatePNG)
	e.GET("/proses/trend/topics.png", RtTrendByTopicPNG)
	e.GET("/proses/wordcloud.png", RtWordCloudPNG)

	//
	// [c] serve via the embedded FS ("rt-embedding.go")
	//

	e.GET("/emb/css/:file", RtEmbCSS)
	e.GET("/emb/images/:file", RtEmbImage)

	e.HideBanner = true
	e.HidePort = lnch.Config.QuietStart
	e.Debug = false
	e.DisableHTTP2 = true
	return e
}

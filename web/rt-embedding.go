//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"embed"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/e-gun/BERTopicBoard/internal/lnch"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/labstack/echo/v4"
)

//go:embed emb
var efs embed.FS

//
// ROUTES
//

func RtEmbCSS(c echo.Context) error {
	d := "emb/css/"
	return pathembedder(c, d)
}

// RtEmbImage - a copy of the home illustration in the data directory takes precedence over the embedded one;
// nothing else in the data directory is ever served from here
func RtEmbImage(c echo.Context) error {
	d := "emb/images/"
	f := filepath.Base(c.Param("file"))

	if f == vv.HOMEIMAGE && lnch.Config.DataDir != "" {
		if b, e := os.ReadFile(filepath.Join(lnch.Config.DataDir, f)); e == nil {
			return c.Blob(http.StatusOK, addresponsehead(f), b)
		}
	}
	return pathembedder(c, d)
}

//
// HELPERS
//

// pathembedder - read and send file at path
func pathembedder(c echo.Context, d string) error {
	f := filepath.Base(c.Param("file"))
	j, e := efs.ReadFile(d + f)
	if e != nil {
		Msg.FYI(fmt.Sprintf("can't find %s", d+f))
		return c.String(http.StatusNotFound, "")
	}
	return c.Blob(http.StatusOK, addresponsehead(f), j)
}

// addresponsehead - set content type by extension
func addresponsehead(f string) string {
	ext := strings.ToLower(filepath.Ext(f))
	switch ext {
	case ".css":
		return "text/css"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".ico":
		return "image/x-icon"
	case ".js":
		return "text/javascript"
	default:
		return "application/octet-stream"
	}
}

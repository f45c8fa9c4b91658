//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
)

// set with -ldflags "-X github.com/e-gun/BERTopicBoard/internal/lnch.GitCommit=$(git rev-parse --short HEAD)" etc.

var (
	GitCommit string
	VersSuppl string
	BuildDate string
)

// VersionLine - "[BTB] BERTopic Board (v1.0.3) [git: 64974732] [csv: ./data] [gl=3; el=0]"
func VersionLine(cc str.CurrentConfiguration) string {
	const (
		HEAD = "[C1%sC0] C5%sC0 (C2v%sC0)"
		GIT  = " [C4git: %sC0]"
		SRC  = " [C3%sC0]"
		LVL  = " [C6gl=%d; el=%dC0]"
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(HEAD, vv.SHORTNAME, vv.MYNAME, vv.VERSION+VersSuppl))
	if GitCommit != "" {
		sb.WriteString(fmt.Sprintf(GIT, GitCommit))
	}
	sb.WriteString(fmt.Sprintf(SRC, DataSource(cc)))
	sb.WriteString(fmt.Sprintf(LVL, cc.LogLevel, cc.EchoLog))
	return Msg.ColStyle(sb.String())
}

// DataSource - where the tables will come from, e.g. "csv: ./data" or "sqlite: results.db"
func DataSource(cc str.CurrentConfiguration) string {
	if cc.SQLiteDB != "" {
		return "sqlite: " + cc.SQLiteDB
	}
	return "csv: " + cc.DataDir
}

func PrintVersion(cc str.CurrentConfiguration) {
	fmt.Println(VersionLine(cc))
}

// PrintBuildInfo - toolchain, platform and, for a csv directory, which of the five files are present
func PrintBuildInfo(cc str.CurrentConfiguration) {
	// 	Built:	2024-03-14@19:02:51	Golang:	go1.21.4	System:	darwin-arm64
	//	dataset.csv ✓  embed.csv ✓  topic_info_all_koherensi.csv ✓  document_info.csv ✗  top_words.csv ✓
	const (
		BLT = "\tS1Built:S0\tC3%sC0"
		GOV = "\tS1Golang:S0\tC3%sC0"
		SYS = "\tS1System:S0\tC3%s-%sC0"
		HAS = "C2%s ✓C0"
		NOT = "C1%s ✗C0"
	)

	bi := ""
	if BuildDate != "" {
		bi = fmt.Sprintf(BLT, BuildDate)
	}
	bi += fmt.Sprintf(GOV, runtime.Version())
	bi += fmt.Sprintf(SYS, runtime.GOOS, runtime.GOARCH)
	fmt.Println(Msg.ColStyle(bi))

	if cc.SQLiteDB != "" {
		return
	}

	var ff []string
	for _, fn := range []string{vv.FILEPREPROC, vv.FILEEMBED, vv.FILECOHERENCE, vv.FILEDOCINFO, vv.FILETOPWORDS} {
		if _, err := os.Stat(filepath.Join(cc.DataDir, fn)); err == nil {
			ff = append(ff, fmt.Sprintf(HAS, fn))
		} else {
			ff = append(ff, fmt.Sprintf(NOT, fn))
		}
	}
	fmt.Println(Msg.Color("\t" + strings.Join(ff, "  ")))
}

// PrintCopyright - the GPL notice unless QuietStart
func PrintCopyright(cc str.CurrentConfiguration) {
	if cc.QuietStart {
		return
	}
	fmt.Println(Msg.ColStyle(fmt.Sprintf(vv.TERMINALTEXT, vv.PROJYEAR, vv.PROJAUTH, vv.PROJURL)))
}

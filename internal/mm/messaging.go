//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND              = -1
	MSGCRIT              = 0
	MSGWARN              = 1
	MSGNOTE              = 2
	MSGFYI               = 3
	MSGPEEK              = 4
	MSGTMI               = 5
	TIMETRACKERMSGTHRESH = MSGFYI
	PANIC                = "[%s v.%s] %s"
	PANIC2               = "[%s v.%s] (%s) %s"
	UNRECOVERABLE        = "UNRECOVERABLE ERROR"
)

// xterm-256 palette: the same hues the old raw escape codes used
var (
	green   = lipgloss.Color("70")
	red1    = lipgloss.Color("160")
	yellow1 = lipgloss.Color("178")
	yellow2 = lipgloss.Color("143")
	cyan2   = lipgloss.Color("117")
	blue1   = lipgloss.Color("38")
	blue2   = lipgloss.Color("68")
	grey3   = lipgloss.Color("242")
	white   = lipgloss.Color("255")

	colortags = regexp.MustCompile(`C([1-7])(.*?)C0`)
	styletags = regexp.MustCompile(`S([1-5])(.*?)S0`)
)

type MessageMaker struct {
	Lnc  time.Time
	BW   bool
	LLvl int
	LNm  string
	SNm  string
	Ver  string
	Win  bool
	Out  io.Writer
	mtx  sync.Mutex
	pths map[string]int
}

// NewMessageMaker - a bare messenger; lnch.NewMessageMakerConfigured() is what the program normally uses
func NewMessageMaker(longname string, shortname string, version string) *MessageMaker {
	return &MessageMaker{
		Lnc:  time.Now(),
		LNm:  longname,
		SNm:  shortname,
		Ver:  version,
		Win:  runtime.GOOS == "windows",
		Out:  os.Stdout,
		pths: make(map[string]int),
	}
}

func (m *MessageMaker) plain() bool {
	return m.Win || m.BW
}

func (m *MessageMaker) paint(c lipgloss.Color, s string) string {
	if m.plain() {
		return s
	}
	return lipgloss.NewStyle().Foreground(c).Render(s)
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[BTB] RtResults() failed: document_info: missing column 'date'"
	if m.LLvl < threshold {
		return
	}

	var c lipgloss.Color
	switch threshold {
	case MSGMAND:
		c = green
	case MSGCRIT:
		c = red1
	case MSGWARN:
		c = yellow2
	case MSGNOTE:
		c = yellow1
	case MSGFYI:
		c = cyan2
	case MSGPEEK:
		c = blue2
	case MSGTMI:
		c = grey3
	default:
		c = white
	}

	m.mtx.Lock()
	defer m.mtx.Unlock()
	fmt.Fprintf(m.Out, "[%s] %s\n", m.paint(yellow1, m.SNm), m.paint(c, message))
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MSGMAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, MSGCRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, MSGWARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, MSGNOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, MSGFYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, MSGPEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, MSGTMI) }

// Color - color text by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	palette := map[string]lipgloss.Color{"1": yellow1, "2": cyan2, "3": blue1, "4": green, "5": red1, "6": grey3, "7": white}

	return colortags.ReplaceAllStringFunc(tagged, func(tag string) string {
		sm := colortags.FindStringSubmatch(tag)
		if sm[1] == "7" && !m.plain() {
			return lipgloss.NewStyle().Blink(true).Render(sm[2])
		}
		return m.paint(palette[sm[1]], sm[2])
	})
}

// Styled - style text by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	return styletags.ReplaceAllStringFunc(tagged, func(tag string) string {
		sm := styletags.FindStringSubmatch(tag)
		if m.plain() {
			return sm[2]
		}
		st := lipgloss.NewStyle()
		switch sm[1] {
		case "1":
			st = st.Bold(true)
		case "2":
			st = st.Italic(true)
		case "3":
			st = st.Underline(true)
		case "4":
			st = st.Strikethrough(true)
		case "5":
			st = st.Reverse(true)
		}
		return st.Render(sm[2])
	})
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// EC - report an error and exit
func (m *MessageMaker) EC(err error) {
	if err != nil {
		m.banner(fmt.Sprintf(PANIC, m.LNm, m.Ver, m.paint(red1, UNRECOVERABLE)), err)
		m.ExitOrHang(1)
	}
}

// EF - report error and function and exit
func (m *MessageMaker) EF(err error, fn string) {
	if err != nil {
		m.banner(fmt.Sprintf(PANIC2, m.LNm, m.Ver, m.paint(cyan2, fn), m.paint(red1, UNRECOVERABLE)), err)
		m.ExitOrHang(1)
	}
}

func (m *MessageMaker) banner(head string, err error) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	fmt.Fprintln(m.Out, head)
	fmt.Fprintln(m.Out, err)
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if m.Win {
		m.Emit(fmt.Sprintf(HANG, m.LNm, SUSP), MSGMAND)
		time.Sleep(SUSP * time.Second)
	}
	os.Exit(e)
}

// LogPaths - increment path counter for this path and report the heap
func (m *MessageMaker) LogPaths(fn string) {
	const (
		HEAP = "%s current heap: %s"
		USES = "routes used: %s"
	)

	m.mtx.Lock()
	m.pths[fn]++
	m.mtx.Unlock()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	m.Emit(fmt.Sprintf(HEAP, fn, fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)), MSGTMI)
	m.Emit(fmt.Sprintf(USES, m.PathStats()), MSGPEEK)
}

// PathStats - "Home: 3 * Results: 7"
func (m *MessageMaker) PathStats() string {
	const (
		STATTMPL = "%s: %d"
	)
	m.mtx.Lock()
	defer m.mtx.Unlock()

	var pairs []string
	for k, v := range m.pths {
		this := strings.TrimPrefix(k, "Rt")
		this = strings.TrimSuffix(this, "()")
		pairs = append(pairs, fmt.Sprintf(STATTMPL, this, v))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, " * ")
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[A2: 0.041s][Δ: 0.012s] document_info.csv: 1893 rows"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}

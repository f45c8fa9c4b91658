//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	Config = BuildDefaultConfig()
	Msg    = NewMessageMakerWithDefaults()
)

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.AssetsHost = vv.ASSETSHOST
	c.BlackAndWhite = vv.BLACKANDWHITE
	c.CloudHeight = vv.CLOUDHEIGHT
	c.CloudMaxWords = vv.CLOUDMAXWORDS
	c.CloudWidth = vv.CLOUDWIDTH
	c.CoherenceCol = ""
	c.DataDir = vv.DATADIR
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.Gzip = vv.USEGZIP
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.PreviewRows = vv.PREVIEWROWS
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.SQLiteDB = ""
	c.TopTopics = vv.TOPTOPICS
	return &c
}

// FindConfigFile - "./btb-conf.json" wins over "~/.config/btb-conf.json"; "" if neither exists
func FindConfigFile() string {
	candidates := []string{fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)}
	if uh, e := os.UserHomeDir(); e == nil {
		candidates = append(candidates, fmt.Sprintf(vv.CONFIGALTAPTH, uh)+vv.CONFIGBASIC)
	}
	for _, c := range candidates {
		if _, e := os.Stat(c); e == nil {
			return c
		}
	}
	return ""
}

// LoadConfigFile - overlay the JSON found at fn onto cfg; keys absent from the file keep their values
func LoadConfigFile(fn string, cfg *str.CurrentConfiguration) error {
	f, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = json.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("could not parse '%s': %w", fn, err)
	}
	return nil
}

// ApplyEnv - overlay BTB_* environment variables onto cfg; a ".env" file in the working directory is read first
func ApplyEnv(cfg *str.CurrentConfiguration) error {
	_ = godotenv.Load()

	var errs []error

	env := func(k string) (string, bool) {
		v, ok := os.LookupEnv(vv.ENVPREFIX + k)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	setstr := func(k string, dst *string) {
		if v, ok := env(k); ok {
			*dst = v
		}
	}

	setint := func(k string, dst *int) {
		if v, ok := env(k); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", vv.ENVPREFIX, k, err))
				return
			}
			*dst = i
		}
	}

	setbool := func(k string, dst *bool) {
		if v, ok := env(k); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", vv.ENVPREFIX, k, err))
				return
			}
			*dst = b
		}
	}

	setstr("ASSETSHOST", &cfg.AssetsHost)
	setbool("BW", &cfg.BlackAndWhite)
	setstr("COHERENCECOL", &cfg.CoherenceCol)
	setstr("DATADIR", &cfg.DataDir)
	setint("ECHOLOG", &cfg.EchoLog)
	setbool("GZIP", &cfg.Gzip)
	setstr("HOST", &cfg.HostIP)
	setint("LOGLEVEL", &cfg.LogLevel)
	setint("PORT", &cfg.HostPort)
	setint("PREVIEWROWS", &cfg.PreviewRows)
	setstr("SQLITE", &cfg.SQLiteDB)
	setint("TOPTOPICS", &cfg.TopTopics)

	return errors.Join(errs...)
}

// Validate - refuse settings that would make every render fail
func Validate(cfg *str.CurrentConfiguration) error {
	switch {
	case cfg.HostPort <= 0 || cfg.HostPort > 65535:
		return fmt.Errorf("port out of range: %d", cfg.HostPort)
	case cfg.PreviewRows < 0:
		return fmt.Errorf("preview rows cannot be negative: %d", cfg.PreviewRows)
	case cfg.TopTopics <= 0:
		return fmt.Errorf("top topics must be positive: %d", cfg.TopTopics)
	case cfg.CloudWidth <= 0 || cfg.CloudHeight <= 0:
		return fmt.Errorf("word cloud size must be positive: %dx%d", cfg.CloudWidth, cfg.CloudHeight)
	case cfg.CloudMaxWords <= 0:
		return fmt.Errorf("word cloud needs at least one word: %d", cfg.CloudMaxWords)
	}
	return nil
}

// flagvalues - the cobra side of the configuration; only flags that were actually set override the file and env
type flagvalues struct {
	cf      string
	assets  string
	bw      bool
	cohcol  string
	datadir string
	el      int
	gl      int
	gz      bool
	host    string
	port    int
	pc      bool
	pm      bool
	q       bool
	rows    int
	sqlite  string
	topn    int
}

// NewRootCommand - "btb" serves; "btb check" loads every dataset once; "btb version" prints version info
func NewRootCommand(serve func(*str.CurrentConfiguration) error, check func(*str.CurrentConfiguration) error) *cobra.Command {
	var fv flagvalues

	root := &cobra.Command{
		Use:           "btb",
		Short:         "Dashboard for precomputed BERTopic artifacts",
		Long:          Msg.ColStyle(vv.LONGHELP),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ConfigAtLaunch(cmd, &fv)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(Config)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&fv.cf, "config", "c", "", "configuration file (default: ./btb-conf.json, then ~/.config/btb-conf.json)")
	pf.StringVarP(&fv.datadir, "data", "d", vv.DATADIR, "directory holding the five csv files")
	pf.StringVar(&fv.sqlite, "sqlite", "", "read the tables from this SQLite database instead of csv files")
	pf.StringVar(&fv.cohcol, "coherence-col", "", "name of the coherence column in the topic table (default: guess)")
	pf.IntVarP(&fv.gl, "loglevel", "g", vv.DEFAULTGOLOGLEVEL, "server log level (0-5)")
	pf.BoolVar(&fv.bw, "bw", vv.BLACKANDWHITE, "disable color output in the console")

	fl := root.Flags()
	fl.StringVarP(&fv.host, "host", "a", vv.SERVEDFROMHOST, "server IP address")
	fl.IntVarP(&fv.port, "port", "p", vv.SERVEDFROMPORT, "server port")
	fl.IntVarP(&fv.el, "echolog", "e", vv.DEFAULTECHOLOGLEVEL, "echo request log level (0-3)")
	fl.BoolVarP(&fv.gz, "gzip", "z", vv.USEGZIP, "enable gzip compression of the server's output")
	fl.IntVar(&fv.rows, "rows", vv.PREVIEWROWS, "rows shown in each table preview")
	fl.IntVar(&fv.topn, "top", vv.TOPTOPICS, "number of topics in the per-topic trend chart")
	fl.StringVar(&fv.assets, "assets", vv.ASSETSHOST, "where browsers fetch echarts.min.js")
	fl.BoolVar(&fv.pc, "profile-cpu", false, "enable CPU profiling run")
	fl.BoolVar(&fv.pm, "profile-mem", false, "enable MEM profiling run")
	fl.BoolVarP(&fv.q, "quiet", "q", false, "quiet startup: suppress copyright notice")

	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load every dataset once and report what was found",
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(Config)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version info and exit",
		Run: func(cmd *cobra.Command, args []string) {
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
		},
	})

	return root
}

// ConfigAtLaunch - defaults, then the JSON file, then the environment, then whatever flags were set
func ConfigAtLaunch(cmd *cobra.Command, fv *flagvalues) error {
	const (
		FAIL1 = "Could not open '%s'"
		FAIL2 = "Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead."
		LOAD  = "'%s'%s loaded"
	)

	cfg := BuildDefaultConfig()

	fn := fv.cf
	if fn == "" {
		fn = FindConfigFile()
	}

	if fn != "" {
		y := ""
		if err := LoadConfigFile(fn, cfg); err != nil {
			y = " *not*"
			if errors.Is(err, os.ErrNotExist) {
				Msg.CRIT(fmt.Sprintf(FAIL1, fn))
			} else {
				Msg.CRIT(fmt.Sprintf(FAIL2, fn))
				cfg = BuildDefaultConfig()
			}
		}
		defer func() { Msg.TMI(fmt.Sprintf(LOAD, fn, y)) }()
	}

	if err := ApplyEnv(cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}

	set("assets", func() { cfg.AssetsHost = fv.assets })
	set("bw", func() { cfg.BlackAndWhite = fv.bw })
	set("coherence-col", func() { cfg.CoherenceCol = fv.cohcol })
	set("data", func() { cfg.DataDir = fv.datadir })
	set("echolog", func() { cfg.EchoLog = fv.el })
	set("gzip", func() { cfg.Gzip = fv.gz })
	set("host", func() { cfg.HostIP = fv.host })
	set("loglevel", func() { cfg.LogLevel = fv.gl })
	set("port", func() { cfg.HostPort = fv.port })
	set("profile-cpu", func() { cfg.ProfileCPU = fv.pc })
	set("profile-mem", func() { cfg.ProfileMEM = fv.pm })
	set("quiet", func() { cfg.QuietStart = fv.q })
	set("rows", func() { cfg.PreviewRows = fv.rows })
	set("sqlite", func() { cfg.SQLiteDB = fv.sqlite })
	set("top", func() { cfg.TopTopics = fv.topn })

	if err := Validate(cfg); err != nil {
		return err
	}

	Config = cfg
	UpdateMessageMakerWithConfig(Msg)
	return nil
}

//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	AssetsHost    string // where the browser fetches echarts.min.js
	BlackAndWhite bool
	CloudHeight   int
	CloudMaxWords int
	CloudWidth    int
	CoherenceCol  string // "" means: guess from vv.COHERENCEHINTS
	DataDir       string
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Gzip          bool
	HostIP        string
	HostPort      int
	LogLevel      int
	PreviewRows   int
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	SQLiteDB      string // non-empty means: read the tables from here instead of DataDir
	TopTopics     int
}

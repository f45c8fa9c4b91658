//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "BERTopic Board"
	SHORTNAME = "BTB"
	VERSION   = "1.0.3"

	ASSETSHOST               = "https://go-echarts.github.io/go-echarts-assets/assets/"
	BLACKANDWHITE            = false
	CLOUDBACKGROUND          = "white"
	CLOUDHEIGHT              = 400
	CLOUDMAXWORDS            = 200
	CLOUDWIDTH               = 800
	CONFIGALTAPTH            = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC              = "btb-conf.json"
	CONFIGLOCATION           = "."
	DATADIR                  = "."
	DATEFORMAT               = "2/1/2006" // day/month/year; leading zeros optional
	DATELABELFORMAT          = "02-01-2006"
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 0
	ENVPREFIX                = "BTB_"
	HOMEIMAGE                = "default.svg"
	HOMEIMAGEWIDTH           = 400
	MAXECHOREQPERSECONDPERIP = 30
	PREVIEWROWS              = 5
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8501
	TIMEOUTRD                = 15 * time.Second
	TIMEOUTWR                = 60 * time.Second
	TOPTOPICS                = 5
	USEGZIP                  = false
)

// the fixed filenames of the upstream artifacts; a SQLite source uses the stems as table names
const (
	FILEPREPROC   = "dataset.csv"
	FILEEMBED     = "embed.csv"
	FILECOHERENCE = "topic_info_all_koherensi.csv"
	FILEDOCINFO   = "document_info.csv"
	FILETOPWORDS  = "top_words.csv"
	COLDATE       = "date"
	COLTOPICNAME  = "Name"
	COLTOPWORDS   = "words"
)

// PREPROCCOLUMNS - the only columns of the preprocessing table that are previewed
var PREPROCCOLUMNS = []string{"description", "description_lower_case", "description_clean", "description_stopword"}

// COHERENCEHINTS - substrings that identify the coherence column when none is configured
var COHERENCEHINTS = []string{"koherensi", "coherence"}

const (
	PAGEHOME    = "Home"
	PAGERESULTS = "Proses"
	PAGEPARAM   = "page"
)

const (
	BERTOPICURL = "https://maartengr.github.io/BERTopic/algorithm/algorithm.html"
	DETIKURL    = "https://news.detik.com/pemilu"
)

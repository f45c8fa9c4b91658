//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024"
	PROJAUTH = "E. Gunderson"
	PROJURL  = "https://github.com/e-gun/BERTopicBoard"

	MINCONFIG = `
{"DataDir": ".", "HostPort": 8501}
`

	// the C#/S# pseudo-tags are swapped for terminal colors and styles by mm.MessageMaker
	LONGHELP = `Serve the precomputed BERTopic artifacts of the C3Pemilu 2024C0 news corpus as a two-page dashboard.

The data directory must hold S1dataset.csvS0, S1embed.csvS0, S1topic_info_all_koherensi.csvS0,
S1document_info.csvS0 and S1top_words.csvS0; or point C1--sqliteC0 at a database with tables of the same names.

Configuration is read from C3btb-conf.jsonC0 (in C3.C0 or C3~/.config/C0), then from C3.envC0 and C3BTB_*C0
environment variables, then from the flags below.`
)

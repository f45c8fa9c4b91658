//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/BERTopicBoard/internal/mm"
	"github.com/e-gun/BERTopicBoard/internal/vv"
)

func NewMessageMakerConfigured() *mm.MessageMaker {
	m := mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION+VersSuppl)
	UpdateMessageMakerWithConfig(m)
	return m
}

func NewMessageMakerWithDefaults() *mm.MessageMaker {
	m := mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
	m.BW = vv.BLACKANDWHITE
	m.LLvl = vv.DEFAULTGOLOGLEVEL
	return m
}

func UpdateMessageMakerWithConfig(m *mm.MessageMaker) {
	m.BW = Config.BlackAndWhite
	m.LLvl = Config.LogLevel
}

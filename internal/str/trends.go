//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import "time"

// DocInfo - the two fields of a document-info row that the trend charts need
type DocInfo struct {
	Topic string
	Date  time.Time
}

type DateCount struct {
	Date  time.Time
	Count int
}

type TopicDateCount struct {
	Topic string
	Date  time.Time
	Count int
}

// Series - one line of a trend chart
type Series struct {
	Name   string
	Points []DateCount
}

// Summary - describe() for one numeric column
type Summary struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
}

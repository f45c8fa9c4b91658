//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package trnd

import (
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/BERTopicBoard/internal/str"
	"github.com/e-gun/BERTopicBoard/internal/vv"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

//
// DOCUMENT COUNTS OVER TIME
//

// ParseDate - day/month/year; "01/09/2023" and "1/9/2023" are both the first of September
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(vv.DATEFORMAT, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date '%s' is not dd/mm/yyyy: %w", s, err)
	}
	return d, nil
}

// DocInfos - pull topic label and parsed date out of every row of the document-info table;
// a row with a blank date has no date and so is not counted anywhere
func DocInfos(t str.Table) ([]str.DocInfo, error) {
	names, err := t.Column(vv.COLTOPICNAME)
	if err != nil {
		return nil, err
	}
	dates, err := t.Column(vv.COLDATE)
	if err != nil {
		return nil, err
	}

	docs := make([]str.DocInfo, 0, len(names))
	for i := range names {
		if strings.TrimSpace(dates[i]) == "" {
			continue
		}
		d, e := ParseDate(dates[i])
		if e != nil {
			return nil, fmt.Errorf("%s row %d: %w", t.Name, i+1, e)
		}
		docs = append(docs, str.DocInfo{Topic: names[i], Date: d})
	}
	return docs, nil
}

// CountByDate - documents per date, oldest first
func CountByDate(docs []str.DocInfo) []str.DateCount {
	counts := make(map[time.Time]int)
	for _, d := range docs {
		counts[d.Date]++
	}

	dd := maps.Keys(counts)
	slices.SortFunc(dd, func(a, b time.Time) int { return a.Compare(b) })

	out := make([]str.DateCount, len(dd))
	for i, d := range dd {
		out[i] = str.DateCount{Date: d, Count: counts[d]}
	}
	return out
}

// CountByTopicDate - documents per (topic, date), sorted by topic label and then by date
func CountByTopicDate(docs []str.DocInfo) []str.TopicDateCount {
	type key struct {
		topic string
		date  time.Time
	}

	counts := make(map[key]int)
	for _, d := range docs {
		counts[key{d.Topic, d.Date}]++
	}

	kk := maps.Keys(counts)
	slices.SortFunc(kk, func(a, b key) int {
		if c := strings.Compare(a.topic, b.topic); c != 0 {
			return c
		}
		return a.date.Compare(b.date)
	})

	out := make([]str.TopicDateCount, len(kk))
	for i, k := range kk {
		out[i] = str.TopicDateCount{Topic: k.topic, Date: k.date, Count: counts[k]}
	}
	return out
}

// TopTopics - the n labels with the highest summed counts; equal sums keep label order
func TopTopics(counts []str.TopicDateCount, n int) []string {
	sums := make(map[string]int)
	for _, c := range counts {
		sums[c.Topic] += c.Count
	}

	labels := maps.Keys(sums)
	slices.Sort(labels)
	slices.SortStableFunc(labels, func(a, b string) int { return sums[b] - sums[a] })

	if n < len(labels) {
		labels = labels[:n]
	}
	return labels
}

// FilterTopics - keep only the rows whose topic is listed
func FilterTopics(counts []str.TopicDateCount, topics []string) []str.TopicDateCount {
	var out []str.TopicDateCount
	for _, c := range counts {
		if slices.Contains(topics, c.Topic) {
			out = append(out, c)
		}
	}
	return out
}

// TopicSeries - one series per topic in the order given; each series is date-sorted
func TopicSeries(counts []str.TopicDateCount, topics []string) []str.Series {
	pos := make(map[string]int, len(topics))
	series := make([]str.Series, len(topics))
	for i, t := range topics {
		pos[t] = i
		series[i] = str.Series{Name: t}
	}

	for _, c := range counts {
		if i, ok := pos[c.Topic]; ok {
			series[i].Points = append(series[i].Points, str.DateCount{Date: c.Date, Count: c.Count})
		}
	}

	for i := range series {
		slices.SortFunc(series[i].Points, func(a, b str.DateCount) int { return a.Date.Compare(b.Date) })
	}
	return series
}

// Trends - everything the two trend charts need, built from the raw document-info table
type Trends struct {
	Total     int
	ByDate    []str.DateCount
	Top       []string
	TopSeries []str.Series
}

func BuildTrends(docinfo str.Table, topn int) (Trends, error) {
	docs, err := DocInfos(docinfo)
	if err != nil {
		return Trends{}, err
	}

	tdc := CountByTopicDate(docs)
	top := TopTopics(tdc, topn)

	return Trends{
		Total:     len(docs),
		ByDate:    CountByDate(docs),
		Top:       top,
		TopSeries: TopicSeries(FilterTopics(tdc, top), top),
	}, nil
}

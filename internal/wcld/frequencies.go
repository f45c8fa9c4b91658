//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package wcld

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	COLLOCATIONTHRESH = 30.0
)

var tokenizer = regexp.MustCompile(`[\p{L}\p{N}_][\p{L}\p{N}_']+`)

// WordFreq - Weight is Count relative to the most frequent word
type WordFreq struct {
	Word   string
	Count  int
	Weight float64
}

// JoinWords - the word-cloud input: the top-words column joined by single spaces, order kept
func JoinWords(words []string) string {
	return strings.Join(words, " ")
}

// Frequencies - tokenize, drop stopwords and all-digit tokens, merge case variants and simple plurals,
// then promote collocated pairs ("prabowo gibran") to entries of their own;
// the result is sorted by count (ties: word) and capped at maxwords
func Frequencies(text string, stops map[string]struct{}, maxwords int) []WordFreq {
	var words []string
	for _, w := range tokenizer.FindAllString(text, -1) {
		if strings.HasSuffix(strings.ToLower(w), "'s") {
			w = w[:len(w)-2]
		}
		if alldigits(w) {
			continue
		}
		words = append(words, w)
	}

	counts := collocate(words, stops, COLLOCATIONTHRESH)

	keys := maps.Keys(counts)
	slices.SortFunc(keys, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return strings.Compare(a, b)
	})

	if maxwords > 0 && len(keys) > maxwords {
		keys = keys[:maxwords]
	}

	out := make([]WordFreq, len(keys))
	for i, k := range keys {
		out[i] = WordFreq{Word: k, Count: counts[k]}
	}
	if len(out) > 0 {
		top := float64(out[0].Count)
		for i := range out {
			out[i].Weight = float64(out[i].Count) / top
		}
	}
	return out
}

// alldigits - "2024" and "٢٠٢٤" go; "1e5" and "g20" stay
func alldigits(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isstop(w string, stops map[string]struct{}) bool {
	_, ok := stops[strings.ToLower(w)]
	return ok
}

// collocate - unigram counts plus every adjacent non-stopword pair whose score clears thresh;
// a promoted pair takes its count away from both of its words
func collocate(words []string, stops map[string]struct{}, thresh float64) map[string]int {
	var unigrams, bigrams []string
	for i, w := range words {
		if isstop(w, stops) {
			continue
		}
		unigrams = append(unigrams, w)
		// pairs come from the text before stopwords are removed: "thank you very much" has no "thank much"
		if i+1 < len(words) && !isstop(words[i+1], stops) {
			bigrams = append(bigrams, w+" "+words[i+1])
		}
	}

	nwords := len(unigrams)
	counts, standard := mergetokens(unigrams)
	paircounts, _ := mergetokens(bigrams)
	orig := maps.Clone(counts)

	for pair, n := range paircounts {
		first, second, _ := strings.Cut(pair, " ")
		w1, ok1 := standard[strings.ToLower(first)]
		w2, ok2 := standard[strings.ToLower(second)]
		if !ok1 || !ok2 {
			continue
		}
		if collocationscore(n, orig[w1], orig[w2], nwords) > thresh {
			counts[w1] -= n
			counts[w2] -= n
			counts[pair] = n
		}
	}

	maps.DeleteFunc(counts, func(_ string, n int) bool { return n <= 0 })
	return counts
}

// mergetokens - counts keyed by the most common spelling; "suaras" folds into "suara" if both occur;
// standard maps every lower-case form (plurals included) to the spelling the counts use
func mergetokens(tokens []string) (map[string]int, map[string]string) {
	variants := make(map[string]map[string]int)
	for _, w := range tokens {
		lw := strings.ToLower(w)
		if _, ok := variants[lw]; !ok {
			variants[lw] = make(map[string]int)
		}
		variants[lw][w]++
	}

	// English plural heuristics only, as the generators do
	plurals := make(map[string]string)
	for lw, forms := range variants {
		if !strings.HasSuffix(lw, "s") || strings.HasSuffix(lw, "ss") {
			continue
		}
		singular := lw[:len(lw)-1]
		sv, ok := variants[singular]
		if !ok {
			continue
		}
		for v, n := range forms {
			sv[v[:len(v)-1]] += n
		}
		plurals[lw] = singular
	}
	for lw := range plurals {
		delete(variants, lw)
	}

	counts := make(map[string]int)
	standard := make(map[string]string)
	for lw, forms := range variants {
		best, bestn, total := "", -1, 0
		for v, n := range forms {
			total += n
			if n > bestn || (n == bestn && v < best) {
				best, bestn = v, n
			}
		}
		counts[best] = total
		standard[lw] = best
	}
	for p, s := range plurals {
		standard[p] = standard[s]
	}
	return counts, standard
}

// collocationscore - Dunning's log-likelihood ratio for a pair seen c12 times whose words were seen c1 and c2 times
func collocationscore(c12, c1, c2, n int) float64 {
	if n <= c1 || n <= c2 {
		// one word is the whole text
		return 0
	}
	N, k12, k1, k2 := float64(n), float64(c12), float64(c1), float64(c2)
	p := k2 / N
	p1 := k12 / k1
	p2 := (k2 - k12) / (N - k1)
	s := loglikely(k12, k1, p) + loglikely(k2-k12, N-k1, p) - loglikely(k12, k1, p1) - loglikely(k2-k12, N-k1, p2)
	return -2 * s
}

func loglikely(k, n, x float64) float64 {
	const (
		FLOOR = 1e-10
	)
	return math.Log(math.Max(x, FLOOR))*k + math.Log(math.Max(1-x, FLOOR))*(n-k)
}

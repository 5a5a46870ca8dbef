// Package fuzzy scores how well a short pattern matches a name and
// suggests the closest names for a mistyped one.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"
)

type MatchResult struct {
	Text  string
	Score int
	Index int
}

// Match scores pattern against text from 0 (no match) to 100 (equal,
// ignoring case). Patterns must appear in text as a subsequence.
func Match(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	p := []rune(strings.ToLower(pattern))
	s := []rune(strings.ToLower(text))

	if string(p) == string(s) {
		return 100
	}
	if len(p) > len(s) {
		return 0
	}

	positions := subsequence(p, s)
	if positions == nil {
		return 0
	}

	return clamp(score(len(p), s, positions))
}

// Similarity scores two names by edit distance from 0 to 100, which
// catches transpositions and extra letters that Match rejects.
func Similarity(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return 0
	}

	d := distance(ra, rb)
	return clamp(100 - d*100/longest)
}

// MatchMany returns texts scoring at least threshold, best first.
func MatchMany(pattern string, texts []string, threshold int) []MatchResult {
	results := make([]MatchResult, 0, len(texts))

	for i, text := range texts {
		s := max(Match(pattern, text), Similarity(pattern, text))
		if s >= threshold {
			results = append(results, MatchResult{Text: text, Score: s, Index: i})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// Suggest returns up to limit candidates that look like input.
func Suggest(input string, candidates []string, limit int) []string {
	results := MatchMany(input, candidates, 50)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Text
	}
	return out
}

// positions of pattern runes in text, or nil if pattern is not a subsequence
func subsequence(pattern, text []rune) []int {
	positions := make([]int, 0, len(pattern))
	pi := 0
	for ti := 0; ti < len(text) && pi < len(pattern); ti++ {
		if pattern[pi] == text[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(pattern) {
		return nil
	}
	return positions
}

func score(patternLen int, text []rune, positions []int) int {
	textLen := len(text)
	s := 50.0

	// coverage of the text
	s += float64(patternLen) / float64(textLen) * 25.0

	if positions[0] == 0 {
		s += 12.0
	}

	run := longestRun(positions)
	s += float64(run) / float64(patternLen) * 20.0

	if scattered := patternLen - run; scattered > 0 {
		s -= float64(scattered) * 4.0
	}

	// earlier matches are better
	var sum int
	for _, pos := range positions {
		sum += pos
	}
	avg := float64(sum) / float64(len(positions))
	s += (1.0 - avg/float64(textLen)) * 10.0

	if boundaryRatio(text, positions) >= 0.3 {
		s += 8.0
	}

	s -= float64(textLen-patternLen) * 0.5

	return int(s)
}

func longestRun(positions []int) int {
	best, cur := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			cur++
			best = max(best, cur)
		} else {
			cur = 1
		}
	}
	return best
}

func boundaryRatio(text []rune, positions []int) float64 {
	count := 0
	for _, pos := range positions {
		if pos == 0 || !unicode.IsLetter(text[pos-1]) && !unicode.IsDigit(text[pos-1]) {
			count++
		}
	}
	return float64(count) / float64(len(positions))
}

// Levenshtein distance with adjacent transpositions
func distance(a, b []rune) int {
	prev2 := make([]int, len(b)+1)
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				cur[j] = min(cur[j], prev2[j-2]+1)
			}
		}
		prev2, prev, cur = prev, cur, prev2
	}

	return prev[len(b)]
}

func clamp(s int) int {
	return max(0, min(100, s))
}

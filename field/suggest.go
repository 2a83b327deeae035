package field

import (
	"sort"
	"strings"
)

const (
	maxSuggestDistance = 1
	maxSuggestions     = 3
)

// suggestTags returns registered tags within one edit of tag, closest
// first and alphabetical among equals
func suggestTags(tag string, candidates []string) []string {
	type scored struct {
		tag      string
		distance int
	}

	target := strings.ToUpper(tag)
	var matches []scored
	for _, c := range candidates {
		if d := levenshtein(target, strings.ToUpper(c)); d <= maxSuggestDistance {
			matches = append(matches, scored{tag: c, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		return matches[i].tag < matches[j].tag
	})

	out := make([]string, 0, maxSuggestions)
	for i := 0; i < len(matches) && i < maxSuggestions; i++ {
		out = append(out, matches[i].tag)
	}
	return out
}

// levenshtein returns the edit distance between two tags
func levenshtein(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	prev := make([]int, len(s2)+1)
	curr := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(s2)]
}

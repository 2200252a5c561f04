// Package namesearch implements the free-text ranking search from
// spec.md §4.8: given a constructed ranking and a starting index, find
// the first entry whose lifter matches a query string under the
// username/instagram/localized-name matching rules.
//
// This is the corpus's MVP substring search, not a relevance-ranked
// full-text engine: spec.md's Non-goals explicitly exclude full-text
// ranking relevance, which is why this package reaches for none of the
// indexing libraries (bleve and friends) the rest of the retrieved
// corpus uses for that job.
package namesearch

import (
	"strings"

	"github.com/gingerlifts/opldb/internal/opltypes"
)

// FindFirst returns the first index i >= start such that the entry at
// ranking[i] matches q, or -1, false if none does.
func FindFirst(lifters []opltypes.Lifter, entries []opltypes.Entry, ranking []opltypes.EntryID, start int, q string) (int, bool) {
	if start < 0 {
		start = 0
	}

	ws := opltypes.ContainsWritingSystem(q)

	var normQ, normBack string
	if ws == opltypes.Latin {
		n, err := opltypes.MakeUsername(q)
		if err != nil || n == "" {
			return -1, false
		}
		normQ = n
		if back, err := opltypes.MakeUsername(reverseTokens(q, "")); err == nil {
			normBack = back
		}
	}
	backWithSpace := reverseTokens(q, " ")

	for i := start; i < len(ranking); i++ {
		lifter := &lifters[entries[ranking[i]].LifterID]
		if matchesLifter(lifter, ws, q, normQ, normBack, backWithSpace) {
			return i, true
		}
	}
	return -1, false
}

func matchesLifter(l *opltypes.Lifter, ws opltypes.WritingSystem, q, normQ, normBack, backWithSpace string) bool {
	if ws == opltypes.Latin {
		if strings.Contains(l.Username, normQ) {
			return true
		}
		if normBack != "" && strings.Contains(l.Username, normBack) {
			return true
		}
		if l.Instagram != "" && strings.Contains(strings.ToLower(l.Instagram), strings.ToLower(normQ)) {
			return true
		}
	}

	name, ok := localizedName(l, ws)
	if !ok {
		return false
	}
	return strings.Contains(name, q) || strings.Contains(name, backWithSpace)
}

func localizedName(l *opltypes.Lifter, ws opltypes.WritingSystem) (string, bool) {
	switch ws {
	case opltypes.Cyrillic:
		if l.CyrillicName != "" {
			return l.CyrillicName, true
		}
	case opltypes.Greek:
		if l.GreekName != "" {
			return l.GreekName, true
		}
	case opltypes.Japanese:
		if l.JapaneseName != "" {
			return l.JapaneseName, true
		}
	}
	return "", false
}

// reverseTokens splits q on whitespace, reverses token order, and joins
// with sep ("" for the "backwards" Latin form that supports matching
// "Lastname Firstname" against a "firstnamelastname" username, " " for
// the backwards-with-space form used against localized names).
func reverseTokens(q, sep string) string {
	tokens := strings.Fields(q)
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return strings.Join(tokens, sep)
}

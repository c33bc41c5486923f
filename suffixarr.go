// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

import (
	"slices"
	"sort"
	"unicode/utf8"
)

// SuffixArray holds a byte text and its suffix array.
type SuffixArray struct {
	text []byte
	sa   []int32
}

// New creates a suffix array for the given text.
func New(text []byte) *SuffixArray {
	sa := make([]int32, len(text))
	ComputeSA(text, sa)
	return &SuffixArray{text, sa}
}

// buildSA ranks text onto its dense alphabet and runs the core on it,
// reusing the result buffer as ranking scratch.
func buildSA(text []int32) []int32 {
	sa := make([]int32, len(text))
	if len(text) == 0 {
		return sa
	}
	ranked, k := rankAlphabet(text, sa)
	ComputeSAInt(ranked, sa, k)
	return sa
}

// comparePrefix compares a suffix with a prefix lexicographically.
func comparePrefix[E symbol](suf, prefix []E) int {
	minLen := len(suf)
	if minLen > len(prefix) {
		minLen = len(prefix)
	}
	for i := 0; i < minLen; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// lookup finds suffixes starting with the given prefix.
func lookup[E symbol](text []E, sa []int32, prefix []E) []int32 {
	if len(prefix) == 0 {
		return sa
	}
	if len(sa) == 0 {
		return []int32{}
	}
	// Find left boundary where suffix >= prefix.
	l := sort.Search(len(sa), func(i int) bool {
		suf := text[sa[i]:]
		return comparePrefix(suf, prefix) >= 0
	})
	// Find right boundary where suffix > prefix.
	r := l + sort.Search(len(sa)-l, func(i int) bool {
		suf := text[sa[l+i]:]
		return comparePrefix(suf, prefix) > 0
	})
	return sa[l:r]
}

// lookupTextOrder finds suffixes starting with the prefix, sorted by text position.
func lookupTextOrder[E symbol](text []E, sa []int32, prefix []E) []int32 {
	indices := lookup(text, sa, prefix)
	cp := make([]int32, len(indices))
	copy(cp, indices)
	// Sort indices by their position in the original text.
	sort.Slice(cp, func(i, j int) bool {
		return cp[i] < cp[j]
	})
	return cp
}

// Lookup finds suffixes starting with the given prefix.
func (sa *SuffixArray) Lookup(prefix []byte) []int32 {
	return lookup(sa.text, sa.sa, prefix)
}

// LookupTextOrder finds suffixes starting with the prefix, sorted by text position.
func (sa *SuffixArray) LookupTextOrder(prefix []byte) []int32 {
	return lookupTextOrder(sa.text, sa.sa, prefix)
}

// LookupSuffix finds the exact suffix in the text.
// For an empty suffix, returns len(sa) as it occurs at the end of the string.
// Otherwise, returns the starting index or -1 if not found.
func (sa *SuffixArray) LookupSuffix(suffix []byte) int {
	if len(suffix) == 0 {
		return len(sa.sa) // Empty suffix is at the end of the string.
	}
	if len(sa.sa) == 0 || len(suffix) > len(sa.text) {
		return -1
	}
	// Check if the suffix matches the end of the text.
	l := len(sa.text) - len(suffix)
	if slices.Compare(sa.text[l:], suffix) == 0 {
		return l
	}
	return -1
}

// LookupPrefix checks if the text starts with the given prefix.
// For an empty prefix, returns -1 as it precedes the first character.
// Returns 0 if matched, -2 otherwise.
func (sa *SuffixArray) LookupPrefix(prefix []byte) int {
	if len(prefix) == 0 {
		return -1 // Empty prefix is invalid, precedes first character.
	}
	if len(sa.sa) == 0 || len(prefix) > len(sa.text) {
		return -2
	}
	if slices.Compare(sa.text[:len(prefix)], prefix) == 0 {
		return 0
	}
	return -2
}

// Index lists one string's occurrences of a query in a GSA.
type Index struct {
	String      int32
	Occurrences []int32
}

// occurrence is one substring match before grouping: the string it
// falls in and its offset there.
type occurrence struct {
	str, off int32
}

// GSA indexes the suffixes of several strings at once. The strings are
// joined into one text, separated by a symbol past the top of their
// alphabet so no match can run across a boundary, and share a single
// suffix array. Substring search walks that array; whole-prefix and
// whole-suffix probes compare against the source strings directly, the
// way the single-string lookups above do.
type GSA struct {
	src    [][]int32 // indexed strings
	cat    []int32   // strings joined by separator symbols
	sa     []int32
	starts []int32 // start offset of each string within cat
}

// newGSA joins the strings and builds their shared suffix array.
// total is the combined length of the strings.
func newGSA(src [][]int32, total int) *GSA {
	// The separator only has to stay out of the strings' alphabet;
	// one past their largest symbol does.
	var sep int32
	for _, s := range src {
		for _, v := range s {
			if v >= sep {
				sep = v + 1
			}
		}
	}
	cat := make([]int32, 0, total+len(src))
	starts := make([]int32, len(src))
	for i, s := range src {
		starts[i] = int32(len(cat))
		cat = append(cat, s...)
		cat = append(cat, sep)
	}
	return &GSA{src, cat, buildSA(cat), starts}
}

// NewGSA creates a generalized suffix array from strings.
func NewGSA(src []string) *GSA {
	if len(src) == 0 {
		return nil
	}
	// Convert strings to int32 slices.
	src32 := make([][]int32, len(src))
	var sz int
	for i := 0; i < len(src); i++ {
		sz += utf8.RuneCountInString(src[i])
		src32[i] = []int32(src[i])
	}
	return newGSA(src32, sz)
}

// NewGSA_32 creates a generalized suffix array from int32 slices.
func NewGSA_32(src [][]int32) *GSA {
	if len(src) == 0 {
		return nil
	}
	var sz int
	for i := 0; i < len(src); i++ {
		sz += len(src[i])
	}
	return newGSA(src, sz)
}

// stringAt returns the string holding position pos of the joined text.
func (gsa *GSA) stringAt(pos int32) int32 {
	i := sort.Search(len(gsa.starts), func(i int) bool {
		return gsa.starts[i] > pos
	})
	return int32(i - 1)
}

// LookupTextOrder finds the occurrences of prefix in every string,
// grouped per string in position order.
func (gsa *GSA) LookupTextOrder(prefix []int32) []Index {
	matches := lookup(gsa.cat, gsa.sa, prefix)
	occs := make([]occurrence, 0, len(matches))
	for _, pos := range matches {
		str := gsa.stringAt(pos)
		off := pos - gsa.starts[str]
		// A suffix starting on a separator belongs to no string.
		if int(off) == len(gsa.src[str]) {
			continue
		}
		occs = append(occs, occurrence{str, off})
	}
	sort.Slice(occs, func(i, j int) bool {
		if occs[i].str != occs[j].str {
			return occs[i].str < occs[j].str
		}
		return occs[i].off < occs[j].off
	})

	// Cut the sorted run into one Index per string, all backed by a
	// single offsets slice.
	out := []Index{}
	offs := make([]int32, len(occs))
	var l int
	for r, oc := range occs {
		offs[r] = oc.off
		if r+1 == len(occs) || occs[r+1].str != oc.str {
			out = append(out, Index{oc.str, offs[l : r+1]})
			l = r + 1
		}
	}
	return out
}

// LookupSuffix reports, for every string suf is a trailing suffix of,
// the position where it starts. An empty suf matches each string at
// its end.
func (gsa *GSA) LookupSuffix(suf []int32) []Index {
	out := []Index{}
	for i, s := range gsa.src {
		if len(suf) > len(s) {
			continue
		}
		l := len(s) - len(suf)
		if slices.Compare(s[l:], suf) == 0 {
			out = append(out, Index{int32(i), []int32{int32(l)}})
		}
	}
	return out
}

// LookupPrefix reports, for every string starting with prefix, the
// match position 0. An empty prefix yields -1 for each string, as it
// precedes the first character.
func (gsa *GSA) LookupPrefix(prefix []int32) []Index {
	if len(prefix) == 0 {
		out := make([]Index, len(gsa.src))
		for i := range gsa.src {
			out[i] = Index{int32(i), []int32{-1}}
		}
		return out
	}
	out := []Index{}
	for i, s := range gsa.src {
		if len(prefix) > len(s) {
			continue
		}
		if slices.Compare(s[:len(prefix)], prefix) == 0 {
			out = append(out, Index{int32(i), []int32{0}})
		}
	}
	return out
}

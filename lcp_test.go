package sais

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func naiveLCP(text []byte, sa []int32) []int32 {
	lcp := make([]int32, len(sa))
	for i := 1; i < len(sa); i++ {
		p, q := text[sa[i-1]:], text[sa[i]:]
		var l int32
		for int(l) < len(p) && int(l) < len(q) && p[l] == q[l] {
			l++
		}
		lcp[i] = l
	}
	return lcp
}

func TestLCP(t *testing.T) {
	tests := []string{
		"",
		"a",
		"aa",
		"banana",
		"mississippi",
		"aaaaaaaaaaaa",
		"abracadabra",
		"abbaabbaabbaabba",
		"The brown fox jumps over the lazy dog.",
	}

	for i, tc := range tests {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			s := New([]byte(tc))
			want := naiveLCP(s.text, s.sa)
			if d := cmp.Diff(want, s.LCP()); d != "" {
				t.Fatalf("LCP mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestLCPRandom(t *testing.T) {
	for _, k := range []int{2, 4, 256} {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			s := New(genRandBytes(5000, k))
			want := naiveLCP(s.text, s.sa)
			if d := cmp.Diff(want, s.LCP()); d != "" {
				t.Fatalf("LCP mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestMatchLen(t *testing.T) {
	tests := []struct {
		p, q string
		n    int
	}{
		{"", "", 0},
		{"a", "", 0},
		{"a", "a", 1},
		{"abcdefgh", "abcdefgh", 8},
		{"abcdefghi", "abcdefghj", 8},
		{"aaaaaaaaaaaaaaaab", "aaaaaaaaaaaaaaaac", 16},
		{"xyz", "xya", 2},
	}
	for i, tc := range tests {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			if got := matchLen([]byte(tc.p), []byte(tc.q)); got != tc.n {
				t.Fatalf("matchLen(%q, %q)=%d, want %d", tc.p, tc.q, got, tc.n)
			}
		})
	}
}

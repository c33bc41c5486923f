// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sais constructs suffix arrays with the SA-IS algorithm
// (suffix array construction by induced sorting) in linear time.
//
// The construction runs inside the caller-provided output buffer: any
// slack past the text length is used for the frequency and bucket
// tables and for the reduced string of the recursion, so with enough
// slack the auxiliary memory stays a small constant independent of the
// input length.
package sais

import (
	"fmt"
	"math"
)

// symbol constrains the two element widths the core is instantiated
// with: bytes for user text at the top level and int32 substring names
// for the reduced string of each recursive call.
type symbol interface {
	~byte | ~int32
}

const (
	// minBucketSize is the alphabet-size threshold below which the
	// frequency table is cheap enough to always keep in its own
	// allocation.
	minBucketSize = 256

	// sortLMS2Limit caps the text length for the two-pass LMS sort:
	// above it the generation flag carried as a +n offset would not
	// fit next to a suffix index in an int32 entry.
	sortLMS2Limit = 1<<30 - 1
)

// ComputeSA computes the suffix array of text into sa[:len(text)].
// sa must hold at least len(text) entries; entries past len(text) form
// a free tail the construction uses as workspace. On return
// sa[:len(text)] lists the starting indices of the suffixes of text in
// lexicographical order; the tail contents are unspecified.
func ComputeSA(text []byte, sa []int32) {
	if len(sa) < len(text) {
		panic(fmt.Errorf("sais: len(sa)=%d < len(text)=%d", len(sa), len(text)))
	}
	if len(sa) > math.MaxInt32 {
		panic(fmt.Errorf("sais: len(sa)=%d > MaxInt32", len(sa)))
	}
	n := int32(len(text))
	if n == 0 {
		return
	}
	if n == 1 {
		sa[0] = 0
		return
	}
	computeSA(text, sa, int32(len(sa))-n, n, 256)
}

// ComputeSAInt computes the suffix array of text over the integer
// alphabet [0, k) into sa[:len(text)]. Every element of text must lie
// in [0, k); sa behaves exactly as in ComputeSA.
func ComputeSAInt(text []int32, sa []int32, k int32) {
	if k < 1 {
		panic(fmt.Errorf("sais: alphabet size k=%d < 1", k))
	}
	if len(sa) < len(text) {
		panic(fmt.Errorf("sais: len(sa)=%d < len(text)=%d", len(sa), len(text)))
	}
	if len(sa) > math.MaxInt32 {
		panic(fmt.Errorf("sais: len(sa)=%d > MaxInt32", len(sa)))
	}
	n := int32(len(text))
	if n == 0 {
		return
	}
	if n == 1 {
		sa[0] = 0
		return
	}
	computeSA(text, sa, int32(len(sa))-n, n, k)
}

// computeSA is the recursive core. It sorts the suffixes of text, a
// sequence of n symbols over the alphabet [0, k), into sa[:n], using
// sa[n:n+fs] as free workspace.
//
// The flags bits record where the frequency table freq, the bucket
// pointers bkt and the generation table gens were placed:
//
//	1  freq has its own allocation (bkt sits in the sa tail unless
//	   bit 2 is also set)
//	2  bkt has its own allocation
//	4  freq has its own allocation shared with bkt
//	8  freq and bkt alias, so counts must be rebuilt after each
//	   bucket-pointer pass
//	16 gens has its own allocation
//	32 gens sits in the sa tail below bkt
func computeSA[E symbol](text []E, sa []int32, fs, n, k int32) {
	var (
		freq, bkt, gens, ra []int32
		bo                  int32 // offset of bkt within sa when it sits in the tail
		i, j, m, p, q       int32
		name, newfs         int32
		c0, c1              int32
		flags               uint32
	)

	// Pick the workspace layout from the alphabet size and the
	// available slack.
	if k <= minBucketSize {
		freq = make([]int32, k)
		if k <= fs {
			bo = n + fs - k
			bkt = sa[bo : bo+k]
			flags = 1
		} else {
			bkt = make([]int32, k)
			flags = 3
		}
	} else if k <= fs {
		freq = sa[n+fs-k : n+fs]
		if k <= fs-k {
			bo = n + fs - 2*k
			bkt = sa[bo : bo+k]
			flags = 0
		} else if k <= 4*minBucketSize {
			bkt = make([]int32, k)
			flags = 2
		} else {
			bkt = freq
			flags = 8
		}
	} else {
		freq = make([]int32, k)
		bkt = freq
		flags = 4 | 8
	}
	// The two-pass LMS sort pays off once buckets hold two entries on
	// average; it additionally needs 2k workspace slots for gens.
	if n <= sortLMS2Limit && n/k >= 2 {
		if flags&1 != 0 {
			if 2*k <= fs-k {
				flags |= 32
			} else {
				flags |= 16
			}
		} else if flags == 0 && 2*k <= fs-2*k {
			flags |= 32
		}
	}

	// Stage 1: sort all the LMS substrings, reducing the problem by at
	// least half. Scan the text right to left, alternating between
	// descending and ascending runs; each transition back to a
	// descending run marks an LMS position. Every discovered position
	// reserves a slot at the end of its character's bucket, and once
	// the next position is discovered the slot is filled with the index
	// just before its own position, so a stored entry always sits in the
	// bucket of the character that follows it.
	getCounts(text, freq, n, k)
	getBuckets(freq, bkt, k, true)
	clear(sa[:n])
	slot := int32(-1)
	i = n - 1
	j = n
	m = 0
	c0 = int32(text[n-1])
	for {
		c1 = c0
		if i--; i < 0 {
			break
		}
		if c0 = int32(text[i]); c0 < c1 {
			break
		}
	}
	for i >= 0 {
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int32(text[i]); c0 > c1 {
				break
			}
		}
		if i >= 0 {
			if slot >= 0 {
				sa[slot] = j
			}
			bkt[c1]--
			slot = bkt[c1]
			j = i
			m++
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int32(text[i]); c0 < c1 {
					break
				}
			}
		}
	}

	if m > 1 {
		if flags&(16|32) != 0 {
			if flags&16 != 0 {
				gens = make([]int32, 2*k)
			} else {
				gens = sa[bo-2*k : bo]
			}
			// The slot reserved for the leftmost LMS position stays
			// empty; give its bucket pointer back. Then flag the
			// lowest entry of every occupied bucket as the first of
			// its generation.
			bkt[int32(text[j+1])]++
			for i, p = 0, 0; i < k; i++ {
				p += freq[i]
				if bkt[i] != p {
					sa[bkt[i]] += n
				}
				gens[i] = 0
				gens[i+k] = 0
			}
			sortLMS2(text, sa, freq, bkt, gens, n, k)
			name = postProcLMS2(sa, n, m)
		} else {
			sortLMS1(text, sa, freq, bkt, n, k)
			name = postProcLMS1(text, sa, n, m)
		}
	} else if m == 1 {
		sa[slot] = j + 1
		name = 1
	} else {
		name = 0
	}

	// Stage 2: solve the reduced problem. If any names collide the
	// relative order of the colliding LMS suffixes is still unknown,
	// so recurse on the reduced string of names.
	if name < m {
		newfs = n + fs - 2*m
		if flags&(1|4|8) == 0 {
			if k+name <= newfs {
				newfs -= k
			} else {
				flags |= 8
			}
		}
		// Gather the names, stored at position/2 in the upper region,
		// into the reduced string right before the tail.
		ra = sa[m+newfs : m+newfs+m]
		for i, j = m+(n>>1)-1, m-1; i >= m; i-- {
			if sa[i] != 0 {
				ra[j] = sa[i] - 1
				j--
			}
		}
		computeSA(ra, sa, newfs, m, name)

		// Rebuild the LMS positions in text order and map the ranks
		// from the recursion back onto them.
		i = n - 1
		j = m - 1
		c0 = int32(text[n-1])
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int32(text[i]); c0 < c1 {
				break
			}
		}
		for i >= 0 {
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int32(text[i]); c0 > c1 {
					break
				}
			}
			if i >= 0 {
				ra[j] = i + 1
				j--
				for {
					c1 = c0
					if i--; i < 0 {
						break
					}
					if c0 = int32(text[i]); c0 < c1 {
						break
					}
				}
			}
		}
		for i = 0; i < m; i++ {
			sa[i] = ra[sa[i]]
		}
		if flags&4 != 0 {
			freq = make([]int32, k)
			bkt = freq
		}
		if flags&2 != 0 {
			bkt = make([]int32, k)
		}
	}

	// Stage 3: induce the full order from the sorted LMS suffixes.
	if flags&8 != 0 {
		getCounts(text, freq, n, k)
	}
	if m > 1 {
		// Scatter the sorted LMS suffixes from sa[:m] to the ends of
		// their buckets, zeroing every slot in between.
		getBuckets(freq, bkt, k, true)
		i = m - 1
		j = n
		p = sa[m-1]
		c1 = int32(text[p])
		for {
			c0 = c1
			q = bkt[c0]
			for q < j {
				j--
				sa[j] = 0
			}
			for {
				j--
				sa[j] = p
				if i--; i < 0 {
					break
				}
				p = sa[i]
				if c1 = int32(text[p]); c1 != c0 {
					break
				}
			}
			if i < 0 {
				break
			}
		}
		for j > 0 {
			j--
			sa[j] = 0
		}
	}
	induceSA(text, sa, freq, bkt, n, k)
}

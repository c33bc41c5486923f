// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// getCounts computes the frequency of each symbol of the alphabet
// [0, k) in text.
func getCounts[E symbol](text []E, freq []int32, n, k int32) {
	clear(freq[:k])
	for i := int32(0); i < n; i++ {
		freq[text[i]]++
	}
}

// getBuckets converts the frequencies in freq into bucket pointers in
// bkt: the exclusive end of each symbol's bucket when end is true, its
// start otherwise. freq and bkt may be the same slice; the left-to-
// right prefix sum keeps the transformation valid either way.
func getBuckets(freq, bkt []int32, k int32, end bool) {
	var sum int32
	if end {
		for i := int32(0); i < k; i++ {
			sum += freq[i]
			bkt[i] = sum
		}
	} else {
		for i := int32(0); i < k; i++ {
			sum += freq[i]
			bkt[i] = sum - freq[i]
		}
	}
}

// induceSA derives the complete suffix order from the sorted LMS
// suffixes sitting at the ends of their buckets. The left-to-right
// pass fills in the suffixes of descending runs top-down; the
// right-to-left pass fills in the suffixes of ascending runs
// bottom-up. ^v entries hand a suffix from one pass to the other; the
// second pass strips the last of them, so sa ends up a plain
// permutation.
func induceSA[E symbol](text []E, sa, freq, bkt []int32, n, k int32) {
	var j int32

	if &freq[0] == &bkt[0] {
		getCounts(text, freq, n, k)
	}
	getBuckets(freq, bkt, k, false)
	j = n - 1
	c1 := int32(text[j])
	b := bkt[c1]
	if j > 0 && int32(text[j-1]) < c1 {
		sa[b] = ^j
	} else {
		sa[b] = j
	}
	b++
	for i := int32(0); i < n; i++ {
		j = sa[i]
		sa[i] = ^j
		if j > 0 {
			j--
			if c0 := int32(text[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			if j > 0 && int32(text[j-1]) < c1 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}
			b++
		}
	}

	if &freq[0] == &bkt[0] {
		getCounts(text, freq, n, k)
	}
	getBuckets(freq, bkt, k, true)
	c1 = 0
	b = bkt[0]
	for i := n - 1; i >= 0; i-- {
		if j = sa[i]; j > 0 {
			j--
			if c0 := int32(text[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			b--
			if j == 0 || int32(text[j-1]) > c1 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}
		} else {
			sa[i] = ^j
		}
	}
}

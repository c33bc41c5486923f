// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package sais

// sortLMS1 induce-sorts the LMS substrings seeded into sa. Entries
// follow the shifted convention of the seeding scan: a stored value v
// stands for the suffix v+1 and lives in the bucket of text[v+1], and
// ^v marks v+1 as the start of an ascending run, to be picked up by
// the right-to-left pass. On return the negative entries of sa are the
// LMS positions in sorted substring order; all other slots are zero.
func sortLMS1[E symbol](text []E, sa, freq, bkt []int32, n, k int32) {
	var j int32

	// Left-to-right pass over the descending runs.
	if &freq[0] == &bkt[0] {
		getCounts(text, freq, n, k)
	}
	getBuckets(freq, bkt, k, false)
	j = n - 1
	c1 := int32(text[j])
	b := bkt[c1]
	j--
	if int32(text[j]) < c1 {
		sa[b] = ^j
	} else {
		sa[b] = j
	}
	b++
	for i := int32(0); i < n; i++ {
		if j = sa[i]; j > 0 {
			if c0 := int32(text[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			j--
			if int32(text[j]) < c1 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}
			b++
			sa[i] = 0
		} else if j < 0 {
			sa[i] = ^j
		}
	}

	// Right-to-left pass over the ascending runs. A run that ends at
	// a descending step emits its LMS position, undoing the shift.
	if &freq[0] == &bkt[0] {
		getCounts(text, freq, n, k)
	}
	getBuckets(freq, bkt, k, true)
	c1 = 0
	b = bkt[0]
	for i := n - 1; i >= 0; i-- {
		if j = sa[i]; j > 0 {
			if c0 := int32(text[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			j--
			b--
			if int32(text[j]) > c1 {
				sa[b] = ^(j + 1)
			} else {
				sa[b] = j
			}
			sa[i] = 0
		}
	}
}

// postProcLMS1 compacts the sorted LMS positions into sa[:m] and names
// each substring by rank, writing the name of the substring at
// position p into sa[m+p/2]. Two substrings share a name only if they
// have equal length and equal symbols; a substring that touches the
// end of the text never shares. Returns the highest name assigned.
func postProcLMS1[E symbol](text []E, sa []int32, n, m int32) int32 {
	var i, j, p int32

	// Compact all the sorted substrings into the first m slots.
	i = 0
	for p = sa[i]; p < 0; p = sa[i] {
		sa[i] = ^p
		i++
	}
	if i < m {
		j = i
		i++
		for {
			if p = sa[i]; p < 0 {
				sa[j] = ^p
				j++
				sa[i] = 0
				if j == m {
					break
				}
			}
			i++
		}
	}

	// Store the length of every LMS substring at position/2, found by
	// repeating the run scan of the seeding phase.
	i = n - 1
	j = n - 1
	c0 := int32(text[n-1])
	var c1 int32
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
			sa[m+((i+1)>>1)] = j - i
			j = i + 1
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

	// Name the substrings by comparing each one to its predecessor in
	// sorted order.
	var name int32
	q := n
	var qlen int32
	for i = 0; i < m; i++ {
		p = sa[i]
		plen := sa[m+(p>>1)]
		diff := true
		if plen == qlen && q+plen < n {
			var x int32
			for x = 0; x < plen && text[p+x] == text[q+x]; x++ {
			}
			if x == plen {
				diff = false
			}
		}
		if diff {
			name++
			q = p
			qlen = plen
		}
		sa[m+(p>>1)] = name
	}
	return name
}

// sortLMS2 is the two-pass variant of sortLMS1. Each entry additionally
// carries a +n generation flag on the first occurrence of its
// (character, run-direction) class within the current generation gen,
// tracked through gens[2c] and gens[2c+1]. postProcLMS2 reads substring
// equality straight off these flags, so no rescan of the text is
// needed for naming. freq and bkt must not alias.
func sortLMS2[E symbol](text []E, sa, freq, bkt, gens []int32, n, k int32) {
	var j, cls int32

	// Left-to-right pass over the descending runs.
	getBuckets(freq, bkt, k, false)
	j = n - 1
	c1 := int32(text[j])
	b := bkt[c1]
	j--
	if int32(text[j]) < c1 {
		cls = 1
	} else {
		cls = 0
	}
	j += n
	if cls&1 != 0 {
		sa[b] = ^j
	} else {
		sa[b] = j
	}
	b++
	var gen int32
	for i := int32(0); i < n; i++ {
		if j = sa[i]; j > 0 {
			if j >= n {
				gen++
				j -= n
			}
			if c0 := int32(text[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			j--
			cls = c1 << 1
			if int32(text[j]) < c1 {
				cls |= 1
			}
			if gens[cls] != gen {
				j += n
				gens[cls] = gen
			}
			if cls&1 != 0 {
				sa[b] = ^j
			} else {
				sa[b] = j
			}
			b++
			sa[i] = 0
		} else if j < 0 {
			sa[i] = ^j
		}
	}
	// Shift the generation flags so that within every run of equal
	// entries only the rightmost carries one.
	for i := n - 1; i >= 0; i-- {
		if sa[i] > 0 && sa[i] < n {
			sa[i] += n
			j = i - 1
			for sa[j] < n {
				j--
			}
			sa[j] -= n
			i = j
		}
	}

	// Right-to-left pass over the ascending runs.
	getBuckets(freq, bkt, k, true)
	gen++
	c1 = 0
	b = bkt[0]
	for i := n - 1; i >= 0; i-- {
		if j = sa[i]; j > 0 {
			if j >= n {
				gen++
				j -= n
			}
			if c0 := int32(text[j]); c0 != c1 {
				bkt[c1] = b
				c1 = c0
				b = bkt[c1]
			}
			j--
			cls = c1 << 1
			if int32(text[j]) > c1 {
				cls |= 1
			}
			if gens[cls] != gen {
				j += n
				gens[cls] = gen
			}
			b--
			if cls&1 != 0 {
				sa[b] = ^(j + 1)
			} else {
				sa[b] = j
			}
			sa[i] = 0
		}
	}
}

// postProcLMS2 compacts the sorted LMS positions into sa[:m], counting
// a fresh name for every entry that carries a generation flag. When
// some names collide it writes the names at position/2 like
// postProcLMS1; when all are distinct it only strips the flags.
// Returns the highest name assigned.
func postProcLMS2(sa []int32, n, m int32) int32 {
	var i, j, d, name int32

	// Compact all the sorted substrings into the first m slots.
	i = 0
	for {
		if j = sa[i]; j >= 0 {
			break
		}
		j = ^j
		if j >= n {
			name++
		}
		sa[i] = j
		i++
	}
	if i < m {
		d = i
		i++
		for {
			if j = sa[i]; j < 0 {
				j = ^j
				if j >= n {
					name++
				}
				sa[d] = j
				d++
				sa[i] = 0
				if d == m {
					break
				}
			}
			i++
		}
	}

	if name < m {
		// Store the names, descending from name+1 and stepping down at
		// every flagged entry.
		d = name + 1
		for i = m - 1; i >= 0; i-- {
			j = sa[i]
			if j >= n {
				j -= n
				d--
			}
			sa[m+(j>>1)] = d
		}
	} else {
		// All distinct; just strip the flags.
		for i = 0; i < m; i++ {
			if j = sa[i]; j >= n {
				sa[i] = j - n
			}
		}
	}
	return name
}

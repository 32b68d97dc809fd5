// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// A Range is one entry of a parsed priority list: a language range and its
// quality weight.
type Range struct {
	Tag     string
	Quality float64
}

// ParseList parses a quality-weighted language priority list, as used in
// the Accept-Language header, and returns its entries sorted by quality,
// highest first. Entries of equal quality keep the order they have in s.
// The weight of an entry is the value of its q parameter; a missing,
// empty or unparseable q counts as 1, and values outside [0, 1] are kept
// as given. Entries without tag text are dropped. ParseList does not
// inspect the tags themselves; text that is not a language tag passes
// through for negotiation to skip.
func ParseList(s string) []Range {
	var ranges []Range
	var entry string
	for s != "" {
		if entry, s = split(s, ','); entry == "" {
			continue
		}
		entry, params := split(entry, ';')
		if entry == "" {
			continue
		}
		q := 1.0
		for params != "" {
			var p string
			p, params = split(params, ';')
			if v := consume(consume(p, 'q'), '='); v != "" {
				if w, err := strconv.ParseFloat(v, 64); err == nil {
					q = w
				}
				break
			}
		}
		ranges = append(ranges, Range{entry, q})
	}
	slices.SortStableFunc(ranges, func(a, b Range) int {
		return cmp.Compare(b.Quality, a.Quality)
	})
	return ranges
}

// split cuts s at the first occurrence of c, trimming space around both
// halves.
func split(s string, c byte) (head, tail string) {
	if i := strings.IndexByte(s, c); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return strings.TrimSpace(s), ""
}

// consume removes a leading token c from s, ignoring ASCII case, and
// returns the remainder or the empty string if there is no such token.
func consume(s string, c byte) string {
	if s == "" || s[0]|0x20 != c {
		return ""
	}
	return strings.TrimSpace(s[1:])
}

// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package negotiate

import "github.com/langtag/negotiate/internal/bcp47"

// compatible reports whether a registered tag can serve a request for
// req. The subtag categories are checked in fixed order: private use,
// extensions, variants, region, script. Every category the registered tag
// specifies must be present in the request with the same value; sequences
// compare element by element over the registered tag's subtags, so the
// request may carry extra trailing subtags. A category the registered tag
// leaves unspecified never rejects. Primary languages are not compared
// here; candidates come from the bucket of the request's language.
func compatible(sup, req bcp47.Tag) bool {
	if !isPrefix(sup.Private, req.Private) {
		return false
	}
	for _, e := range sup.Extensions {
		m, ok := findExtension(req.Extensions, e.Singleton)
		if !ok || !isPrefix(e.Subtags, m.Subtags) {
			return false
		}
	}
	if !isPrefix(sup.Variants, req.Variants) {
		return false
	}
	if sup.Region != "" && sup.Region != req.Region {
		return false
	}
	if sup.Script != "" && sup.Script != req.Script {
		return false
	}
	return true
}

// isPrefix reports whether seq is a leading subsequence of full. An empty
// seq is a prefix of anything.
func isPrefix(seq, full []string) bool {
	if len(seq) > len(full) {
		return false
	}
	for i, s := range seq {
		if full[i] != s {
			return false
		}
	}
	return true
}

func findExtension(exts []bcp47.Extension, singleton string) (bcp47.Extension, bool) {
	for _, e := range exts {
		if e.Singleton == singleton {
			return e, true
		}
	}
	return bcp47.Extension{}, false
}

// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package negotiate matches the languages an application supports against
// a client's weighted preferences, as expressed in an Accept-Language
// header.
//
// An application registers the BCP 47 tags of its translations once, in
// order of preference:
//
//	locales := negotiate.Must("en-US", "en", "de-CH", "zh-Hant")
//
// and resolves each request's priority list against them:
//
//	tag := locales.Resolve("de-ch, en;q=0.7")
//	// tag == "de-CH"
//
// Resolution never fails: list entries that are not language tags are
// ignored, and the first registered tag is the result when nothing
// matches.
//
// A registered tag matches a requested tag of the same primary language
// unless the registered tag is the more specific of the two: every
// script, region, variant, extension and private-use subtag a registered
// tag carries must appear in the request as well. The reverse is fine, so
// registering "en" serves requests for "en-US", while registering "en-US"
// does not serve requests for bare "en".
//
// Tag syntax is deferred to golang.org/x/text/language. Tags are matched
// as parsed, without canonicalization.
package negotiate

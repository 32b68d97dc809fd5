// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bcp47 decomposes BCP 47 language tags into their subtag
// categories. Parsing is delegated to golang.org/x/text/language in Raw
// mode, which accepts well-formed tags without canonicalizing them; this
// package only rearranges the parsed parts and implements none of the tag
// grammar itself.
package bcp47

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// An Extension is a single extension sequence of a tag: a singleton
// followed by its subtags, as in "u-co-phonebk".
type Extension struct {
	Singleton string
	Subtags   []string
}

// A Tag holds the subtag categories of a parsed language tag. String
// fields are empty and slice fields nil for categories the tag does not
// specify. Subtags carry the case the parser chose (lowercase language,
// title-case script, uppercase region, lowercase elsewhere), so equal
// subtags compare equal between any two Tags regardless of input spelling.
type Tag struct {
	Language   string
	Script     string
	Region     string
	Variants   []string
	Extensions []Extension
	Private    []string
}

// Parse decomposes s. It returns an error only if s is not well-formed
// BCP 47. A well-formed tag containing values unknown to the underlying
// parser decomposes to whatever the parser retains of it; in particular
// an unknown primary subtag leaves Language empty.
func Parse(s string) (Tag, error) {
	raw, err := language.Raw.Parse(s)
	if err != nil {
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return Tag{}, err
		}
	}
	var t Tag
	b, sc, r := raw.Raw()
	if b != (language.Base{}) {
		t.Language = b.String()
	}
	if sc != (language.Script{}) {
		t.Script = sc.String()
	}
	if r != (language.Region{}) {
		t.Region = r.String()
	}
	for _, v := range raw.Variants() {
		t.Variants = append(t.Variants, v.String())
	}
	for _, e := range raw.Extensions() {
		parts := strings.Split(e.String(), "-")
		if parts[0] == "x" {
			t.Private = parts[1:]
		} else {
			t.Extensions = append(t.Extensions, Extension{parts[0], parts[1:]})
		}
	}
	return t, nil
}

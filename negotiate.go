// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package negotiate

import (
	"errors"
	"fmt"
	"slices"

	"github.com/langtag/negotiate/internal/bcp47"
)

var (
	// ErrNoLanguages is returned by SetSupported when it is called with an
	// empty tag list.
	ErrNoLanguages = errors.New("negotiate: no languages defined")

	// ErrIllFormed is the cause reported for a supported tag that is not
	// well-formed BCP 47.
	ErrIllFormed = errors.New("negotiate: tag is not well-formed")

	// ErrNoLanguage is the cause reported for a supported tag that parses
	// but has no primary language subtag, such as "x-private" or "und".
	ErrNoLanguage = errors.New("negotiate: tag has no language subtag")
)

// A TagError is returned by SetSupported when one of the supplied tags
// cannot enter the registry. It wraps ErrIllFormed or ErrNoLanguage.
type TagError struct {
	Tag string // the rejected tag as supplied
	Err error
}

func (e *TagError) Error() string { return fmt.Sprintf("%v: %q", e.Err, e.Tag) }

func (e *TagError) Unwrap() error { return e.Err }

// A Negotiator matches the language tags an application supports against
// requested priority lists. Configure it once with SetSupported; it is
// then safe for concurrent use by multiple goroutines. Reconfiguring it
// while resolutions are in flight requires external synchronization.
// Independent Negotiators share no state.
type Negotiator struct {
	index map[string][]supported
	tags  []string
}

// supported is one registry entry: the decomposed tag and the exact
// string it was registered as, which is what resolution returns.
type supported struct {
	tag  bcp47.Tag
	orig string
}

// New returns a fresh, unconfigured Negotiator.
func New() *Negotiator {
	return &Negotiator{}
}

// New returns another fresh, unconfigured Negotiator, independent of n.
// It serves code that holds a negotiator but needs further registries,
// as in per-tenant setups.
func (n *Negotiator) New() *Negotiator {
	return New()
}

// Must returns a Negotiator configured with the given tags and panics if
// any of them is rejected. It simplifies safe initialization of
// package-level variables:
//
//	var locales = negotiate.Must("en-US", "en", "zh-Hant")
func Must(tags ...string) *Negotiator {
	n := New()
	if err := n.SetSupported(tags...); err != nil {
		panic(err)
	}
	return n
}

// SetSupported replaces the registry with the given tags and makes the
// first of them the default. Every tag must be well-formed BCP 47 with a
// primary language subtag; tags are indexed as parsed but returned from
// resolution exactly as supplied here. All tags are validated before any
// state changes, so a failed call leaves the previous registry intact.
// Errors wrap ErrNoLanguages, or ErrIllFormed and ErrNoLanguage through a
// *TagError naming the rejected tag.
func (n *Negotiator) SetSupported(tags ...string) error {
	if len(tags) == 0 {
		return ErrNoLanguages
	}
	entries := make([]supported, len(tags))
	for i, s := range tags {
		t, err := bcp47.Parse(s)
		if err != nil {
			return &TagError{Tag: s, Err: ErrIllFormed}
		}
		if t.Language == "" {
			return &TagError{Tag: s, Err: ErrNoLanguage}
		}
		entries[i] = supported{t, s}
	}
	index := make(map[string][]supported)
	for _, e := range entries {
		index[e.tag.Language] = append(index[e.tag.Language], e)
	}
	n.index = index
	n.tags = slices.Clone(tags)
	return nil
}

// Resolve returns the best supported tag for the requested priority list:
// the first element of ResolveAll. It returns "" only for an unconfigured
// Negotiator.
func (n *Negotiator) Resolve(list string) string {
	if all := n.ResolveAll(list); len(all) > 0 {
		return all[0]
	}
	return ""
}

// ResolveAll returns the supported tags that can serve the requested
// priority list, best first. The list is processed in order of descending
// quality, ties in request order; for each entry every supported tag of
// the same primary language is tested for compatibility in registration
// order, and all matches are kept, so a tag appears once per entry it
// matches. Entries that are not well-formed tags, or whose language has
// no supported tags, are skipped without error. If the list is empty or
// nothing matches, ResolveAll returns the default tag alone. The result
// is nil only for an unconfigured Negotiator.
func (n *Negotiator) ResolveAll(list string) []string {
	if len(n.tags) == 0 {
		return nil
	}
	var matches []string
	for _, r := range ParseList(list) {
		req, err := bcp47.Parse(r.Tag)
		if err != nil {
			continue
		}
		for _, sup := range n.index[req.Language] {
			if compatible(sup.tag, req) {
				matches = append(matches, sup.orig)
			}
		}
	}
	if len(matches) == 0 {
		return []string{n.tags[0]}
	}
	return matches
}

// Supported returns the registered tags in registration order, or nil for
// an unconfigured Negotiator.
func (n *Negotiator) Supported() []string {
	return slices.Clone(n.tags)
}

// Default returns the tag resolved when nothing matches: the first tag of
// the most recent SetSupported call, or "" for an unconfigured
// Negotiator.
func (n *Negotiator) Default() string {
	if len(n.tags) == 0 {
		return ""
	}
	return n.tags[0]
}

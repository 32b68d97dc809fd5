// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package httplang connects a language negotiator to net/http: it reads a
// request's language preferences, resolves them, and carries the result
// through the request context.
package httplang

import (
	"context"
	"net/http"
)

// LangParam is the query parameter that overrides the Accept-Language
// header. Its value is tried before anything the header asks for.
const LangParam = "lang"

// A Resolver picks the best supported language tag for a priority list.
// *negotiate.Negotiator implements it.
type Resolver interface {
	Resolve(list string) string
}

// Negotiate returns the best supported tag for r. The LangParam query
// parameter, when present, is prepended to the Accept-Language header as
// the most preferred entry, so an unusable override still falls through
// to the header.
func Negotiate(res Resolver, r *http.Request) string {
	list := r.Header.Get("Accept-Language")
	if v := r.URL.Query().Get(LangParam); v != "" {
		if list == "" {
			list = v
		} else {
			list = v + ", " + list
		}
	}
	return res.Resolve(list)
}

type contextKey struct{}

// WithTag returns a context carrying tag.
func WithTag(ctx context.Context, tag string) context.Context {
	return context.WithValue(ctx, contextKey{}, tag)
}

// TagFrom returns the tag stored by WithTag, or "" if the context carries
// none.
func TagFrom(ctx context.Context) string {
	tag, _ := ctx.Value(contextKey{}).(string)
	return tag
}

// Middleware negotiates the language of each request once and stores it
// in the request context for handlers to read with TagFrom. It adds
// Accept-Language to the response's Vary header, since the negotiated
// tag shapes the response.
func Middleware(res Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Language")
			if tag := Negotiate(res, r); tag != "" {
				r = r.WithContext(WithTag(r.Context(), tag))
			}
			next.ServeHTTP(w, r)
		})
	}
}

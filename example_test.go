// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package negotiate_test

import (
	"fmt"

	"github.com/langtag/negotiate"
)

func Example() {
	locales := negotiate.Must("en-US", "en", "de-CH", "zh-Hant")

	fmt.Println(locales.Resolve("de-ch, en;q=0.7"))
	fmt.Println(locales.Resolve("zh-hant-tw, en;q=0.7"))
	fmt.Println(locales.Resolve("da, nb"))
	// Output:
	// de-CH
	// zh-Hant
	// en-US
}

func ExampleNegotiator_ResolveAll() {
	locales := negotiate.Must("en-US", "en", "fr")
	for _, tag := range locales.ResolveAll("fr;q=0.8, en-us") {
		fmt.Println(tag)
	}
	// Output:
	// en-US
	// en
	// fr
}

func ExampleParseList() {
	for _, r := range negotiate.ParseList("fr-CH, fr;q=0.9, en;q=0.8") {
		fmt.Printf("%s %g\n", r.Tag, r.Quality)
	}
	// Output:
	// fr-CH 1
	// fr 0.9
	// en 0.8
}

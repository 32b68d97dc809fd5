// Copyright 2025 The Langtag Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// langneg resolves Accept-Language priority lists against a set of
// supported language tags and prints what a server would serve.
//
// The supported tags come from a TOML config file, by default
// langneg.toml in the current directory:
//
//	languages = ["en-US", "en", "de-CH"]
//
// or from the -languages flag, which overrides the file. Each positional
// argument is one priority list to resolve; with no arguments langneg
// reads one list per line from standard input, so it works as a filter:
//
//	langneg 'de-ch, en;q=0.7' 'fr'
//	grep Accept-Language access.log | cut -d' ' -f2- | langneg -all
//
// With -all it prints the full ranked match list instead of just the
// winner. The winning tag is colored when standard output is a terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"github.com/langtag/negotiate"
)

var (
	configFile = flag.String("config", "langneg.toml", "TOML file listing the supported languages")
	languages  = flag.String("languages", "", "comma-separated supported tags, overriding the config file")
	all        = flag.Bool("all", false, "print the full ranked match list")
)

type config struct {
	Languages []string `toml:"languages"`
}

func main() {
	log.SetPrefix("langneg: ")
	log.SetFlags(0)
	flag.Parse()

	tags, err := supportedTags()
	if err != nil {
		log.Fatal(err)
	}
	locales := negotiate.New()
	if err := locales.SetSupported(tags...); err != nil {
		log.Fatal(err)
	}

	lists := flag.Args()
	if len(lists) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lists = append(lists, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 4, 2, ' ', 0)
	winner := color.New(color.FgGreen)
	for _, list := range lists {
		matches := locales.ResolveAll(list)
		if !*all {
			matches = matches[:1]
		}
		out := winner.Sprint(matches[0])
		if rest := matches[1:]; len(rest) > 0 {
			out += " " + strings.Join(rest, " ")
		}
		fmt.Fprintf(w, "%s\t%s\n", list, out)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// supportedTags returns the tags to register, from the -languages flag if
// given, else from the config file.
func supportedTags() ([]string, error) {
	if *languages != "" {
		tags := strings.Split(*languages, ",")
		for i, t := range tags {
			tags[i] = strings.TrimSpace(t)
		}
		return tags, nil
	}
	var cfg config
	if _, err := toml.DecodeFile(*configFile, &cfg); err != nil {
		return nil, err
	}
	return cfg.Languages, nil
}

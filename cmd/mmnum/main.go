// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mmnum converts between integers and Burmese numeral phrases.
//
// Usage:
//
//	mmnum [flags] format number...
//	mmnum [flags] parse phrase...
//	mmnum [flags] [filter]
//
// Without a command, mmnum reads lines from standard input and converts each
// one: lines of digits are formatted, other lines are parsed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mmtext/text/numeral"
)

var (
	lang      = flag.String("lang", "en", "BCP 47 `tag` used to group the digits of plain numbers")
	shorthand = flag.Bool("shorthand", false, "write round millions in the lakh-first shorthand")
)

// A Command is an implementation of an mmnum command.
type Command struct {
	// Run runs the command. The args are the arguments after the command
	// name.
	Run func(cfg *config, args []string) error

	// UsageLine is the one-line usage message.
	// The first word in the line is taken to be the command name.
	UsageLine string

	// Short is the short description shown in the 'mmnum help' output.
	Short string
}

// Name returns the command's name: the first word in the usage line.
func (c *Command) Name() string {
	name := c.UsageLine
	if i := strings.Index(name, " "); i >= 0 {
		name = name[:i]
	}
	return name
}

var commands []*Command

func init() {
	commands = []*Command{cmdFormat, cmdParse, cmdFilter}
}

// config holds the state shared by all commands.
type config struct {
	conv    *numeral.Converter
	printer *message.Printer
	out     io.Writer
	in      io.Reader
}

func newConfig(tag string, short bool) (*config, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid -lang %q: %v", tag, err)
	}
	return &config{
		conv:    numeral.New(numeral.Burmese, numeral.Shorthand(short)),
		printer: message.NewPrinter(t),
		out:     os.Stdout,
		in:      os.Stdin,
	}, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: mmnum [flags] [command] [arguments]\n\n")
	fmt.Fprintf(os.Stderr, "commands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "\t%-28s %s\n", c.UsageLine, c.Short)
	}
	fmt.Fprintf(os.Stderr, "\nflags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mmnum: ")
	flag.Usage = usage
	flag.Parse()

	cfg, err := newConfig(*lang, *shorthand)
	if err != nil {
		log.Fatal(err)
	}

	args := flag.Args()
	cmd := cmdFilter
	if len(args) > 0 {
		cmd = nil
		for _, c := range commands {
			if c.Name() == args[0] {
				cmd = c
				break
			}
		}
		if cmd == nil {
			if args[0] != "help" {
				log.Printf("unknown command %q", args[0])
			}
			usage()
		}
		args = args[1:]
	}
	if err := cmd.Run(cfg, args); err != nil {
		log.Fatal(err)
	}
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command animnum prints the frames of an animated number for a sequence of values.
// Values are taken from the arguments, or from stdin, one per line.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/avdva/animnum"
	"github.com/avdva/animnum/diff"
	"github.com/avdva/animnum/numfmt"
	"github.com/avdva/animnum/render"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("animnum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := animnum.DefaultConfig()
	family := fs.String("family", cfg.Format.Family.String(), "format family: standard, currency, percentage or decimal")
	notation := fs.String("notation", cfg.Format.Notation.String(), "notation: standard, scientific or engineering")
	animation := fs.String("animation", cfg.Animation.Kind.String(), "animation: none, flip, slide or fade")
	fs.BoolVar(&cfg.Format.Abbreviate, "abbreviate", false, "use short-scale suffixes (K, M, B, T, Q)")
	fs.IntVar(&cfg.Format.MaxTotalDigits, "max-digits", 0, "maximum number of shown digits, 0 for no limit")
	fs.IntVar(&cfg.Format.FixedDecimalPlaces, "places", 0, "number of fraction digits, negative for the locale default")
	fs.StringVar(&cfg.Format.Locale, "locale", cfg.Format.Locale, "BCP 47 locale")
	fs.StringVar(&cfg.Format.Currency, "currency", cfg.Format.Currency, "ISO 4217 currency code")
	fs.Float64Var(&cfg.Animation.Duration, "duration", cfg.Animation.Duration, "character transition duration, seconds")
	fs.Float64Var(&cfg.Animation.Step, "step", cfg.Animation.Step, "cascade step between characters, seconds")
	fs.StringVar(&cfg.Animation.Prefix, "prefix", "", "text drawn before the number")
	fs.StringVar(&cfg.Animation.Suffix, "suffix", "", "text drawn after the number")
	verbose := fs.Bool("v", false, "log edits and transitions")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] [value...]\n\n", fs.Name()),
			writeln(stderr, "Prints a frame for every value. Values are read from stdin if none are given."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logger := log.New(stderr, "animnum: ", 0)

	var err error
	if cfg.Format.Family, err = numfmt.ParseFamily(*family); err == nil {
		if cfg.Format.Notation, err = numfmt.ParseNotation(*notation); err == nil {
			cfg.Animation.Kind, err = diff.ParseAnimation(*animation)
		}
	}
	if err != nil {
		logger.Printf("error: %v", err)
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	d, err := animnum.New(cfg)
	if err != nil {
		logger.Printf("error: %v", err)
		return 2
	}
	if err := d.LocaleErr(); err != nil {
		logger.Printf("warning: %v", err)
	}

	values := fs.Args()
	if len(values) == 0 {
		if values, err = readValues(stdin); err != nil {
			logger.Printf("error reading input: %v", err)
			return 1
		}
	}
	code := 0
	for _, v := range values {
		f, err := d.Update(v)
		if err != nil {
			logger.Printf("skipping %q: %v", v, err)
			code = 1
			continue
		}
		if err := writeln(stdout, f.String()); err != nil {
			return 1
		}
		if *verbose {
			logFrame(logger, f)
		}
	}
	return code
}

func readValues(r io.Reader) ([]string, error) {
	var values []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			values = append(values, line)
		}
	}
	return values, sc.Err()
}

func logFrame(logger *log.Logger, f animnum.Frame) {
	logger.Printf("%s: %d changed, edits %s", f.Text, f.Changed, f.Edits)
	for _, s := range f.Segments {
		for i, dir := range s.Directives {
			if dir.Static() {
				continue
			}
			logger.Printf("  %s[%d] %s %q -> %q %s, %s", s.Kind, i, dir.Class, dir.Prev, dir.Char, dir.Direction, timing(dir))
		}
	}
}

func timing(dir render.Directive) string {
	enter := dir.Layers[len(dir.Layers)-1]
	return fmt.Sprintf("delay %.3fs, duration %.3fs", enter.Delay, enter.Duration)
}

func writef(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...interface{}) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

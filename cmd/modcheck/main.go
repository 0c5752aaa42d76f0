// modcheck scans tracker module files for messages whose bytes read
// differently as code page 437 than as UTF-8, a sign that the message was
// stored in one encoding and cataloged in the other. Differing messages
// are printed side by side; files that cannot be read or parsed are
// reported and skipped.
package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/fatih/color"

	charset "github.com/cspiegel/openmpt-charset"
)

var (
	flagAll = flag.Bool("all", false, "show every line of a differing message, not just the changed lines")

	warnf = color.New(color.FgRed).FprintfFunc()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("modcheck: ")
	flag.Parse()

	reporter := &charset.Reporter{Out: os.Stdout, DiffOnly: !*flagAll}
	for _, filename := range flag.Args() {
		if err := processFile(reporter, filename); err != nil {
			if errors.Is(err, charset.ErrLineMismatch) {
				// A conversion bug, not bad input. Don't soldier on.
				log.Fatal(err)
			}
			warnf(os.Stderr, "can't open %s: %v\n", filename, err)
		}
	}
}

func processFile(reporter *charset.Reporter, filename string) error {
	songBytes, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	message, err := charset.ExtractMessage(songBytes)
	if err != nil {
		return err
	}

	return reporter.CheckMessage(filename, message)
}

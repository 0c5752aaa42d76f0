package charset

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrLineMismatch means the original and converted messages split into a
// different number of lines. The conversion maps one byte to one codepoint
// and never touches newlines, so this can only happen through a bug.
var ErrLineMismatch = errors.New("internal error: line count mismatch between original and converted message")

// reportColumn is where the separator between the original and converted
// columns goes, measured in counted character units.
const reportColumn = 80

// Reporter compares module messages against their code page 437
// reinterpretation and writes aligned two-column reports for any that
// differ.
type Reporter struct {
	Out io.Writer

	// DiffOnly limits output to the lines of a message that changed under
	// conversion. When false every line of a differing message is shown.
	DiffOnly bool
}

// CheckMessage reinterprets message as CP437 and reports the differences
// to the Reporter's writer. An empty message, or one the conversion leaves
// untouched, produces no output and no error.
func (r *Reporter) CheckMessage(filename, message string) error {
	if message == "" {
		return nil
	}

	converted, err := Convert([]byte(message))
	if err != nil {
		return err
	}
	if string(converted) == message {
		return nil
	}

	return r.report(filename, splitLines(message), splitLines(string(converted)))
}

func (r *Reporter) report(filename string, messageLines, convertedLines []string) error {
	if len(messageLines) != len(convertedLines) {
		return ErrLineMismatch
	}

	fmt.Fprintf(r.Out, "Difference in %s:\n\n", filename)

	for i, line := range messageLines {
		if r.DiffOnly && line == convertedLines[i] {
			continue
		}

		fmt.Fprint(r.Out, line)
		if n := GraphemeCount(line); n < reportColumn {
			fmt.Fprint(r.Out, strings.Repeat(" ", reportColumn-n))
		}
		fmt.Fprintf(r.Out, " | %s\n", convertedLines[i])
	}
	fmt.Fprintln(r.Out)

	return nil
}

// splitLines splits s on newlines. A trailing newline does not produce a
// final empty line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

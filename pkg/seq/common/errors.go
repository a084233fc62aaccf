// 3 Nov 2024

package common

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/fatih/color"
)

// Kinds of error. Packages wrap these with %w so the top level can
// decide what to say, without parsing messages.
var (
	ErrUsage      = errors.New("usage error")
	ErrInput      = errors.New("input error")
	ErrValidation = errors.New("validation error")
)

var kinds = []error{ErrUsage, ErrInput, ErrValidation}

// Usage prints a usage line to w and gives back the exit code
// for a usage error.
func Usage(w io.Writer, ustr string) int {
	fmt.Fprintln(w, "Usage:", ustr)
	return ExitFailure
}

// prefix picks the start of the message for an error.
// Missing and unreadable files are reported the same way
// whichever tool finds them.
func prefix(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "Error: File not found -"
	case errors.Is(err, fs.ErrPermission):
		return "Error: Permission denied -"
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return "Error:"
		}
	}
	return "Unexpected error:"
}

// message is the text of err without the names of the kinds, since
// the prefix already says it is an error.
func message(err error) string {
	s := err.Error()
	for _, k := range kinds {
		s = strings.ReplaceAll(s, k.Error()+": ", "")
	}
	return s
}

// Report is the one place where an error turns into a message and
// an exit code. A nil error is success.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(w, prefix(err))
	fmt.Fprintln(w, "", message(err))
	return ExitFailure
}

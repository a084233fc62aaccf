// 29 Apr 2020

package common

import (
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
)

// WrtTemp puts s in a new temporary file and gives back its name.
// Tests use it for input files. The caller removes the file.
func WrtTemp(s string) (fname string, err error) {
	fp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", err
	}
	fname = fp.Name()
	_, err = fp.WriteString(s)
	if e := fp.Close(); err == nil {
		err = e
	}
	if err != nil {
		os.Remove(fname)
		return "", err
	}
	return fname, nil
}

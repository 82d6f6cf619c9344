package cli

import (
	_ "embed"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/matzehuels/wordtower/pkg/errors"
)

// sampleLength is how many characters of the bundled sample are used.
const sampleLength = 301

//go:embed sample.txt
var sampleDocument string

// sampleText returns the first sampleLength characters of the bundled sample.
func sampleText() string {
	r := []rune(sampleDocument)
	if len(r) > sampleLength {
		r = r[:sampleLength]
	}
	return string(r)
}

// readInput returns the text named by args: a file path, "-" or nothing for
// stdin. Blank input is replaced by the sample; the bool reports that.
func (c *CLI) readInput(args []string) (string, bool, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case len(args) == 0 || args[0] == "-":
		if c.Stdin == nil || isTerminal(c.Stdin) {
			return sampleText(), true, nil
		}
		data, err = io.ReadAll(c.Stdin)
		if err != nil {
			return "", false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
	default:
		data, err = os.ReadFile(args[0])
		if os.IsNotExist(err) {
			return "", false, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", args[0])
		}
		if err != nil {
			return "", false, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", args[0])
		}
	}

	if strings.TrimSpace(string(data)) == "" {
		return sampleText(), true, nil
	}
	return string(data), false, nil
}

// isTerminal reports whether r is an interactive terminal, in which case
// waiting for stdin would block on the user.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package colormap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Warning is printed when the answer to the prompt isn't a supported palette
var Warning = fmt.Sprintf("Invalid palette, '%s' used by default.", Default)

func prompt() string {
	names := make([]string, len(Names))
	for i, n := range Names {
		names[i] = string(n)
	}
	return fmt.Sprintf("Choose one of the following colour palettes (%s) : ", strings.Join(names, ", "))
}

// Ask writes the prompt to w and reads a single line answer from r. An
// empty or unrecognised answer selects Default and returns false; there is
// no second attempt.
func Ask(r io.Reader, w io.Writer) (Name, bool, error) {
	if _, err := io.WriteString(w, prompt()); err != nil {
		return Default, false, err
	}

	s := bufio.NewScanner(r)
	if !s.Scan() {
		if err := s.Err(); err != nil {
			return Default, false, err
		}
	}

	name, ok := Select(strings.TrimSuffix(s.Text(), "\r"))
	return name, ok, nil
}

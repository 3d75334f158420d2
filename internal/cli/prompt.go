package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// confirm asks a yes/no question. Only "y" or "yes" confirm; end of input
// counts as no.
func confirm(r io.Reader, w io.Writer, message string) (bool, error) {
	fmt.Fprintf(w, "%s (y/N): ", message)

	answer, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, eris.Wrap(err, "reading confirmation")
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

package menu

import (
	"bufio"
	"os"
	"strings"
)

// InputReader reads one line of user input at a time. The console
// implementation wraps bufio.Reader; tests use a scripted implementation
type InputReader interface {
	ReadLine() (string, error)
}

// StdinReader reads lines from standard input
type StdinReader struct {
	reader	*bufio.Reader
}

func NewStdinReader() *StdinReader {
	return &StdinReader{bufio.NewReader(os.Stdin)}
}

func (r *StdinReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

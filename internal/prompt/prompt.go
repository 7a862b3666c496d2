// Package prompt implements the interactive fallback used when no API key
// is stored: a single yes/no confirmation followed by one key entry.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// KeyStore persists an entered key. Satisfied by *store.Store.
type KeyStore interface {
	SetKey(key string) (bool, error)
}

type Prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	store  KeyStore
}

func New(in io.Reader, out io.Writer, store KeyStore) *Prompter {
	return &Prompter{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
		store:  store,
	}
}

// PromptForKey asks the user whether they have an API key and, if affirmed,
// reads and persists one. A declined confirmation, a read failure, an empty
// entry, or a store rejection all report ok=false. Single turn, no retry.
func (p *Prompter) PromptForKey() (string, bool) {
	fmt.Fprint(p.out, "Do you have a valid key? [y/N] ")

	answer, err := p.readLine()
	if err != nil {
		return "", false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		return "", false
	}

	fmt.Fprint(p.out, "Enter your OpenWeatherMap API key: ")
	key, err := p.readKey()
	if err != nil {
		return "", false
	}

	key = strings.TrimSpace(key)
	ok, err := p.store.SetKey(key)
	if err != nil || !ok {
		fmt.Fprintln(p.out, "invalid key entered")
		return "", false
	}

	fmt.Fprintln(p.out, "API key saved.")
	return key, true
}

// readKey masks the entry when reading from a terminal.
func (p *Prompter) readKey() (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return p.readLine()
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

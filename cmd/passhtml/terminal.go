package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// passwordEnv, when set, supplies the password without prompting.
const passwordEnv = "PASSHTML_PASSWORD"

var (
	errNoPassword       = errors.New("no password given")
	errPasswordMismatch = errors.New("passwords do not match")
)

// terminal is everything the commands need from the user's console.
type terminal struct {
	stdin      io.Reader
	isTerminal func() bool
	readSecret func() ([]byte, error)
	clipboard  func(string) error
}

func defaultTerminal() terminal {
	return terminal{
		stdin: os.Stdin,
		isTerminal: func() bool {
			fd := os.Stdin.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		readSecret: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
		clipboard: clipboard.WriteAll,
	}
}

// readPassword resolves the password from the environment, an interactive
// prompt written to prompts, or the first line of stdin, in that order.
// confirm asks for the password twice when prompting interactively.
func (t terminal) readPassword(prompts io.Writer, confirm bool) (string, error) {
	if pw := os.Getenv(passwordEnv); pw != "" {
		return pw, nil
	}

	if t.isTerminal() {
		pw, err := t.prompt(prompts, "Password: ")
		if err != nil {
			return "", err
		}
		if confirm {
			again, err := t.prompt(prompts, "Repeat password: ")
			if err != nil {
				return "", err
			}
			if again != pw {
				return "", errPasswordMismatch
			}
		}
		return pw, nil
	}

	line, err := bufio.NewReader(t.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errNoPassword
	}
	return pw, nil
}

func (t terminal) prompt(w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	secret, err := t.readSecret()
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if len(secret) == 0 {
		return "", errNoPassword
	}
	return string(secret), nil
}

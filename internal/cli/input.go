package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password
// from the user's terminal without echo. A newline is printed after
// the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetChoice prints a numbered menu to w and reads the user's selection.
// It returns the zero-based index of the chosen option. An out-of-range or
// non-numeric answer is re-prompted until a valid choice is read.
func GetChoice(reader *bufio.Reader, prompt string, options []string, w io.Writer) (int, error) {
	if _, err := fmt.Fprintln(w, prompt); err != nil {
		return 0, err
	}
	for i, opt := range options {
		fmt.Fprintf(w, "  %d. %s\n", i+1, opt)
	}
	for {
		answer, err := GetSimpleText(reader, "Choose an option", w)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(w, "Please enter a number between 1 and %d\n", len(options))
			continue
		}
		return n - 1, nil
	}
}

// GetAmount prompts for a positive decimal amount in rupees.
func GetAmount(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	for {
		answer, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		amount, err := strconv.ParseFloat(answer, 64)
		if err != nil || amount <= 0 {
			fmt.Fprintln(w, "Please enter a positive amount")
			continue
		}
		return amount, nil
	}
}

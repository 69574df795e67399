package pages

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hostel/controllers"
)

// Console is the presentation layer: prompts in, lines out. It knows nothing
// about the backend.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	eof     bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(in), out: out}
}

func (c *Console) Println(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// Notify is the toast equivalent: a one-line transient message.
func (c *Console) Notify(message string, level controllers.Level) {
	prefix := "[ok]"
	if level == controllers.LevelError {
		prefix = "[error]"
	}
	fmt.Fprintf(c.out, "%s %s\n", prefix, message)
}

// Confirm asks a yes/no question; anything but y/yes declines.
func (c *Console) Confirm(prompt string) bool {
	answer := strings.ToLower(c.Prompt(prompt + " [y/N]"))
	return answer == "y" || answer == "yes"
}

func (c *Console) Prompt(label string) string {
	if c.eof {
		return ""
	}
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.scanner.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

// EOF reports whether the input stream has ended. Once true every further
// prompt returns empty, so page loops must treat it as a quit.
func (c *Console) EOF() bool { return c.eof }

// PromptInt re-prompts until it reads an integer; empty input keeps fallback.
func (c *Console) PromptInt(label string, fallback int) int {
	for {
		raw := c.Prompt(fmt.Sprintf("%s [%d]", label, fallback))
		if raw == "" {
			return fallback
		}
		value, err := strconv.Atoi(raw)
		if err == nil {
			return value
		}
		c.Println("Please enter a number")
	}
}

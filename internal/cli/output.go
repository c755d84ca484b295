// Package cli prints human-readable progress for the heimdall command
// line tools.
package cli

import (
	"fmt"
	"os"
)

type Output struct {
	colors bool
}

func NewOutput() *Output {
	return &Output{colors: isTerminal()}
}

func (o *Output) DisableColors() {
	o.colors = false
}

func (o *Output) green(s string) string {
	if !o.colors {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}

func (o *Output) red(s string) string {
	if !o.colors {
		return s
	}
	return "\033[31m" + s + "\033[0m"
}

func (o *Output) Stepf(format string, args ...any) {
	fmt.Printf("  "+format+"\n", args...)
}

func (o *Output) Successf(format string, args ...any) {
	fmt.Printf("  "+o.green("✓ ")+"%s\n", fmt.Sprintf(format, args...))
}

func (o *Output) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  "+o.red("✗ ")+"%s\n", fmt.Sprintf(format, args...))
}

func (o *Output) File(path string) {
	fmt.Printf("    %s\n", path)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}

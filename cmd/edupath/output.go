package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + colorReset
}

func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, colorize(colorRed, "✗ "+msg))
}

func fprintSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, colorize(colorGreen, "✓ "+fmt.Sprintf(format, args...)))
}

func fprintFailure(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, colorize(colorRed, "✗ "+fmt.Sprintf(format, args...)))
}

func fprintHeader(w io.Writer, text string) {
	bar := strings.Repeat("=", len(text)+4)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", colorize(colorBlue, bar), colorize(colorBlue, "= "+text+" ="), colorize(colorBlue, bar))
}

func fprintTestHeader(w io.Writer, text string) {
	fmt.Fprintln(w, colorize(colorCyan, "[TEST] "+text))
	fmt.Fprintln(w, strings.Repeat("-", 80))
}

func fprintJSON(w io.Writer, label string, data []byte) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err == nil {
		fmt.Fprintf(w, "\n%s\n%s\n", colorize(colorYellow, label+":"), pretty.String())
	}
}

package cli

import (
	"fmt"
	"io"
	"os"
)

// Output destinations; tests replace them.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// notifyWriter returns where per-file notices go, or nil when quiet.
func notifyWriter() io.Writer {
	if globalQuiet {
		return nil
	}
	return stdout
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	printMarked(colorGreen, "✓", msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	printMarked(colorYellow, "⚠", msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	if globalNoColor {
		fmt.Fprintf(stderr, "✗ %s\n", msg)
	} else {
		fmt.Fprintf(stderr, "%s✗%s %s\n", colorRed, colorReset, msg)
	}
}

// printVerbose prints a verbose message (only if verbose is enabled)
func printVerbose(verbose bool, msg string) {
	if !verbose {
		return
	}
	printMarked(colorGray, "[VERBOSE]", msg)
}

func printMarked(color, mark, msg string) {
	if globalQuiet {
		return
	}
	if globalNoColor {
		fmt.Fprintf(stdout, "%s %s\n", mark, msg)
	} else {
		fmt.Fprintf(stdout, "%s%s%s %s\n", color, mark, colorReset, msg)
	}
}

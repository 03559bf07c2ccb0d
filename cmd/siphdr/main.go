// Command siphdr parses SIP header lines and prints them normalized.
//
// Usage:
//
//	siphdr [flags] [header line...]
//
// Header lines are read from the arguments or, when there are none, from the standard input.
// Folded lines (continuation lines starting with whitespace) are joined.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// Package main is the entry point for the mutanalysis CLI.
package main

import "gooze.dev/pkg/mutanalysis/cmd"

func main() {
	cmd.Execute()
}

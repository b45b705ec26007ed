// Package main is the entry point for the LogoForge application.
// It initializes and runs the command-line interface for generating
// the application logo and icon set.
package main

import "github.com/logoforge/logoforge/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/xll-gen/appfiles-gen/cmd"

// main is the entry point of the appfiles-gen CLI.
// It executes the root command which handles positional arguments and flags.
func main() {
	cmd.Execute()
}

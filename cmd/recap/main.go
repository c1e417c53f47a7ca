// main is the entry point for the recap CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/recap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

package main

import (
	"evilboard/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunEvilBoard(); err != nil {
		fmt.Fprintf(os.Stderr, "error evilboard: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/ownref/ownref/demo"
)

func main() {
	if err := demo.RunAll(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

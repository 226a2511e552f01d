package main

import (
	"fmt"
	"os"

	iacoding "github.com/temirov/ia-coding/cmd/ia-coding"
)

func main() {
	executionErr := iacoding.Execute()
	if executionErr != nil {
		_, _ = fmt.Fprintln(os.Stderr, executionErr)
		os.Exit(1)
	}
}

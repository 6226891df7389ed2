package main

import (
	"fmt"
	"os"
)

func main() {
	driver := NewDriver()

	if err := driver.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "[Driver] initialization failed: %v\n", err)
		os.Exit(1)
	}
	defer driver.Shutdown()

	driver.Run()
}

package main

import (
	"os"

	"github.com/h1export/h1export/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}

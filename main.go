package main

import (
	"github.com/mkonrad/crosscheck/cmd"
)

func main() {
	cmd.Execute()
}

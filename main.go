package main

import (
	"os"

	"github.com/just-hms/bandcheck/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"os"

	"github.com/msto63/strutil/cmd/strutil/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

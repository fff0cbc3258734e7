package main

import (
	"os"

	"github.com/obinna/studymate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

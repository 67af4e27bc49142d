package main

import (
	"os"

	"github.com/vamosestudar/estudar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

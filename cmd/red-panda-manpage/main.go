package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	redpanda "github.com/bjk2k/red-panda/cmd/red-panda"
	"github.com/bjk2k/red-panda/internal/version"
)

func main() {
	rootCmd := redpanda.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RED-PANDA",
		Section: "1",
		Source:  "red-panda " + version.Version,
		Manual:  "red-panda manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/deanrtaylor1/tagextractor/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}

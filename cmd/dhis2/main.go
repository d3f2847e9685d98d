package main

import "github.com/dhis2go/dhis2/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/gobeaver/fileclass/internal/cli"

func main() {
	cli.Execute()
}

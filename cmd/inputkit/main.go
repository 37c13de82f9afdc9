package main

import "github.com/inputkit/inputkit/internal/cli"

func main() {
	cli.Execute()
}

package main

import "fastdev/internal/cli"

func main() {
	cli.Execute()
}

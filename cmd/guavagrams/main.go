package main

import "github.com/mcoot/guavagrams/internal/cli"

func main() {
	cli.Execute()
}

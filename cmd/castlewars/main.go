package main

import "github.com/mcoot/castlewars/internal/cli"

func main() {
	cli.Execute()
}

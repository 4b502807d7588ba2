package main

import "github.com/esposm03/xcursor/internal/cli"

func main() {
	cli.Execute()
}

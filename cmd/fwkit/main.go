package main

import "github.com/aalvaropc/fwkit/internal/cli"

func main() {
	cli.Execute()
}

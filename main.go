package main

import "github.com/thenatx/nart/internal/cli"

func main() {
	cli.Execute()
}

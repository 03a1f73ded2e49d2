package main

import "mpin_check/internal/cli"

func main() {
	cli.Execute()
}

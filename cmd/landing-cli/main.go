package main

import "github.com/nfrund/gamma/cmd/landing-cli/cmd"

func main() {
	cmd.Execute()
}

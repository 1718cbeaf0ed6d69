package main

import "github.com/tsprep/tsprep/cmd/tsprep/cmd"

func main() {
	cmd.Execute()
}

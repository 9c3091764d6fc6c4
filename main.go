package main

import "github.com/chriserin/earley/cmd"

func main() {
	cmd.Execute()
}

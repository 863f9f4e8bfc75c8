package main

import "github.com/alexiusacademia/gorlc/cmd"

func main() {
	cmd.Execute()
}

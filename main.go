package main

import "github.com/quadodev/quado/cmd"

func main() {
	cmd.Execute()
}

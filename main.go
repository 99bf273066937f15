package main

import "github.com/tranvictor/ensinfo/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/itsmostafa/minipy/cmd"

func main() {
	cmd.Execute()
}

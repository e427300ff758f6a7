package main

import "github.com/realscript/realscript/cmd"

func main() {
	cmd.Execute()
}

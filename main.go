package main

import "github.com/jcdickinson/doxymd/cmd"

func main() {
	cmd.Execute()
}

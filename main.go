package main

import "github.com/incpath/incpath/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/sixex/sixex/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/byterings/atm/cmd"

func main() {
	cmd.Execute()
}

package main

import "socctl/cmd"

func main() {
	cmd.Execute()
}

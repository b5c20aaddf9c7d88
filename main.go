package main

import "datamine/cmd"

func main() {
	cmd.Execute()
}

package main

import "orrery/cmd"

func main() {
	cmd.Execute()
}

package main

import "evdealer/cmd"

func main() {
	cmd.Execute()
}

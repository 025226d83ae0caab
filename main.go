package main

import "greeting-server/cmd"

func main() {
	cmd.Execute()
}

package main

import "creative-sync/cmd"

func main() {
	cmd.Execute()
}

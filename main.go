package main

import "precache-manager/cmd"

func main() {
	cmd.Execute()
}

package main

import "MeloList/cmd"

func main() {
	cmd.Execute()
}

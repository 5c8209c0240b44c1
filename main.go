package main

import "serverconf/cmd"

func main() {
	cmd.Execute()
}

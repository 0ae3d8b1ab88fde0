package main

import "rinomina/cmd/rinomina-cli/cmd"

func main() {
	cmd.Execute()
}

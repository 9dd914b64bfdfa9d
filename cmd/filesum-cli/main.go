package main

import "filesum/cmd/filesum-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "sectoralarm-cli/cmd"

func main() {
	cmd.Execute()
}

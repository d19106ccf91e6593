package main

import "github.com/kozaktomas/photo-booth/cmd"

func main() {
	cmd.Execute()
}

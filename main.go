package main

import "github.com/steelcode/goec3/cmd"

func main() {
	cmd.Execute()
}

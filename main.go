package main

import "github.com/recipelang/rcp/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/katalvlaran/cpop/cmd/cpop/cmd"

func main() {
	cmd.Execute()
}

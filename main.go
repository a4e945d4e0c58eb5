package main

import "github.com/josephgoksu/CrewWing/cmd"

func main() {
	cmd.Execute()
}

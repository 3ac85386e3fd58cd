package main

import (
	"github.com/rrwick/Assembly-Dereplicator/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

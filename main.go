package main

import (
	"github.com/sak-codes/biopython/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

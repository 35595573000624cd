package main

import (
	"github.com/fanctrld/fanctrld/cmd"
)

func main() {
	cmd.Execute()
}

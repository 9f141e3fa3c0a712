// Towers of Hanoi simulator - CLI for playing, solving and recording the puzzle.
package main

import (
	"github.com/unicordoba/hanoi/internal/cli"
)

func main() {
	cli.Execute()
}

// cube is a command-line Rubik's cube solver.
package main

import (
	"github.com/ehrlich-b/cube/internal/cli"
)

func main() {
	cli.Execute()
}

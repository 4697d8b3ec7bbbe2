// cubeview - interactive 3D Rubik's cube viewer.
package main

import (
	"github.com/SeamusWaldron/cubeview/internal/cli"
)

func main() {
	cli.Execute()
}

package main

import "github.com/OpenTraceLab/GateSketch/cmd/gatesketch/cmd"

func main() {
	cmd.Execute()
}

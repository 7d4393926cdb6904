package main

import "github.com/OpenTraceLab/OpenTraceResistor/cmd/otr/cmd"

func main() {
	cmd.Execute()
}

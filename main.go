package main

import "github.com/mouse-blink/bodyscan/cmd"

func main() {
	cmd.Execute()
}

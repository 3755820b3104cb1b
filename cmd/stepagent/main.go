package main

import "github.com/2beens/aquafit/cmd/stepagent/root"

func main() {
	root.Execute()
}

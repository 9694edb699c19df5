package main

import "github.com/alexanderritik/hase/cmd"

var version = "dev"

func main() {
	cmd.Execute(version)
}

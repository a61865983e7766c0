package main

import "github.com/jcikl/jcikl-member-app-sub001/cmd"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd.Execute(version)
}

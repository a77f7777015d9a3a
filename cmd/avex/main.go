package main

import "github.com/blackwell-systems/avex/internal/app"

// version is overridden with -ldflags "-X main.version=..." in release builds.
var version = "dev"

func main() {
	app.SetVersion(version)
	app.Execute()
}

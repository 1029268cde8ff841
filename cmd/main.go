package main

import "github.com/dkravets/go-task-manager/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadConfig()
	app.MustInitApplicationLogger()

	app.MustRunConsole()
}

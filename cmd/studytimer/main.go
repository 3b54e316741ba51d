package main

import (
	"os"

	"github.com/ayoisaiah/studytimer/app"
	"github.com/ayoisaiah/studytimer/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}

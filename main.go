package main

import (
	"os"

	"github.com/bvisness/flowstyle/app"
)

func main() {
	cfg := app.LoadConfig()
	os.Exit(app.Run(cfg, os.Args[1:], os.Stdout, os.Stderr))
}

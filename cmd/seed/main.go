package main

import (
	"os"

	pkglogger "github.com/starterkit/render-starter/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pkglogger.Error("Seeding failed: %v", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"transposer/internal/logging"
)

func main() {
	logging.InitFromEnv()
	if err := newRootCmd().Execute(); err != nil {
		logging.L().Error("transposer", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/danmuck/gsxws/internal/gsx"
	"github.com/danmuck/gsxws/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	if err := newRootCmd().Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	var gerr *gsx.Error
	if errors.As(err, &gerr) {
		fmt.Fprintf(os.Stderr, "gsxctl: %s: %s\n", gerr.Code, gerr.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "gsxctl: %v\n", err)
}

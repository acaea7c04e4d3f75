// Command nino validates and formats UK National Insurance numbers.
//
// Usage:
//
//	nino check AA370773A "ab 12 34 01"
//	nino format --display AA370773A
//	echo AA370773A | nino weekday --output json
//	nino serve
//
// Configuration is read from the environment and an optional .env file:
// APP_ENV, APP_NAME, LOG_LEVEL, NINO_STRICT and the HTTP_* server settings.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrymomot/nino/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "nino: %v\n", err)
		os.Exit(2)
	}

	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintf(os.Stderr, "nino: %v\n", err)
		}
		os.Exit(1)
	}
}

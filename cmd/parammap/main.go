package main

import (
	"errors"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	return execute(defaultDeps(), os.Args[1:])
}

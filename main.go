package main

import (
	"log"

	"blogzone-cli/api"
	"blogzone-cli/auth"
	"blogzone-cli/cmd"
	"blogzone-cli/fs"
	"blogzone-cli/term"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injections to avoid circular imports
	auth.SetApiClient(api.Client)
	term.SetClearInvalidAuthFn(auth.ClearStoredSession)

	// set up a rotating file logger
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
}

func main() {
	cmd.Execute()
}

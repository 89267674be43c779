package fs

import (
	"os"
	"path/filepath"

	"blogzone-cli/term"
)

var Cwd string
var HomeDir string
var HomeBlogZoneDir string
var HomeAuthPath string
var HomeAccountsPath string
var HomeLogPath string

func init() {
	var err error
	Cwd, err = os.Getwd()
	if err != nil {
		term.OutputErrorAndExit("Error getting current working directory: %v", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}
	HomeDir = home

	if os.Getenv("BLOGZONE_ENV") == "development" {
		HomeBlogZoneDir = filepath.Join(home, ".blogzone-home-dev")
	} else {
		HomeBlogZoneDir = filepath.Join(home, ".blogzone-home")
	}

	err = os.MkdirAll(HomeBlogZoneDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeAuthPath = filepath.Join(HomeBlogZoneDir, "auth.json")
	HomeAccountsPath = filepath.Join(HomeBlogZoneDir, "accounts.json")
	HomeLogPath = filepath.Join(HomeBlogZoneDir, "blogzone.log")
}

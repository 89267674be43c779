package term

import (
	"fmt"
	"os"

	shared "blogzone-cli/shared"

	"github.com/fatih/color"
)

var clearInvalidAuth func()

// SetClearInvalidAuthFn is injected from main to avoid a circular import
// between term and auth.
func SetClearInvalidAuthFn(fn func()) {
	clearInvalidAuth = fn
}

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
	os.Exit(1)
}

func OutputNotSignedInAndExit() {
	StopSpinner()
	fmt.Println("🤷‍♂️ You're not signed in")
	fmt.Println()
	PrintCmds("", "sign-in", "sign-up")
	os.Exit(1)
}

// HandleApiError is the terminal fallback for API failures. An invalid token
// means the stored session is dead, so it gets cleared before exiting.
func HandleApiError(apiError *shared.ApiError) {
	StopSpinner()

	if apiError.Type == shared.ApiErrorTypeInvalidToken {
		if clearInvalidAuth != nil {
			clearInvalidAuth()
		}
		OutputSimpleError("Your session has expired. Please sign in again.")
		fmt.Println()
		PrintCmds("", "sign-in")
		os.Exit(1)
	}

	OutputErrorAndExit(apiError.Msg)
}

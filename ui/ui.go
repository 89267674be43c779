package ui

import (
	"fmt"
	"os"

	"blogzone-cli/term"

	"github.com/fatih/color"
	"github.com/pkg/browser"
)

var webHost string

func init() {
	if os.Getenv("BLOGZONE_WEB_HOST") != "" {
		webHost = os.Getenv("BLOGZONE_WEB_HOST")
	} else if os.Getenv("BLOGZONE_ENV") == "development" {
		webHost = "http://localhost:3000"
	} else {
		webHost = "https://the-blog-zone.vercel.app"
	}
}

// OpenPostURL opens a post's permalink in the default browser.
func OpenPostURL(msg string, postId int) {
	OpenURL(msg, fmt.Sprintf("/dashboard/%d", postId))
}

func OpenURL(msg, path string) {
	url := webHost + path

	fmt.Printf(
		"%s\n\nIf it doesn't open automatically, use this URL:\n%s\n",
		color.New(term.ColorHiGreen).Sprint(msg),
		url,
	)

	err := browser.OpenURL(url)
	if err != nil {
		fmt.Printf("Failed to open URL automatically: %v\n", err)
		fmt.Println("Please open the URL manually in your browser.")
	}
}

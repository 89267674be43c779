package term

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"sign-up":        {"", "create a new Blog Zone account"},
	"sign-in":        {"", "sign in to an existing account"},
	"sign-out":       {"", "sign out and clear the stored session"},
	"whoami":         {"", "show the signed-in user"},
	"posts":          {"ps", "list all public posts"},
	"private":        {"pv", "list your private posts"},
	"show":           {"sh", "show a post with its comments"},
	"create":         {"c", "write and publish a new post"},
	"edit":           {"e", "edit one of your posts"},
	"delete-post":    {"dp", "delete one of your posts"},
	"comment":        {"cm", "comment on a post"},
	"delete-comment": {"dc", "delete one of your comments"},
	"profile":        {"pr", "show a user's public posts and comments"},
	"set-profile":    {"", "update your display name or username"},
	"set-password":   {"", "change your password"},
	"open":           {"o", "open a post in your browser"},
}

func PrintCmds(prefix string, cmds ...string) {
	printCmds(os.Stderr, prefix, []color.Attribute{color.Bold, color.FgHiWhite, color.BgCyan}, cmds...)
}

func PrintCmdsWithColors(prefix string, colors []color.Attribute, cmds ...string) {
	printCmds(os.Stderr, prefix, colors, cmds...)
}

func printCmds(w io.Writer, prefix string, colors []color.Attribute, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			if strings.Contains(cmd, alias) {
				cmd = strings.Replace(cmd, alias, fmt.Sprintf("(%s)", alias), 1)
			} else {
				cmd = fmt.Sprintf("%s (%s)", cmd, alias)
			}
		}
		styled := color.New(colors...).Sprintf(" blogzone %s ", cmd)

		fmt.Fprintf(w, "%s%s 👉 %s\n", prefix, styled, desc)
	}
}

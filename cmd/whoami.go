package cmd

import (
	"fmt"

	"blogzone-cli/auth"
	"blogzone-cli/format"
	"blogzone-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()
	user := auth.MustVerifySession()

	color.New(color.Bold, term.ColorHiCyan).Printf("👤 %s", user.Name)
	fmt.Printf(" (@%s)\n", user.Username)
	fmt.Printf("Joined %s\n", format.Date(user.CreatedAt))
}

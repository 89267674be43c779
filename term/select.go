package term

import (
	"os"

	"github.com/fatih/color"
	"github.com/plandex-ai/survey/v2"
)

// SelectFromList prompts for a single choice, used for picking between stored
// accounts. The lists here are short, so every option fits on one page.
func SelectFromList(msg string, options []string) (string, error) {
	var selected string
	sel := &survey.Select{
		Message:       color.New(ColorHiMagenta, color.Bold).Sprint(msg),
		Options:       options,
		PageSize:      len(options),
		FilterMessage: "",
	}

	err := survey.AskOne(sel, &selected)
	if err != nil {
		if err.Error() == "interrupt" {
			os.Exit(0)
		}
		return "", err
	}

	return selected, nil
}

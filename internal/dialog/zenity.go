package dialog

import "fmt"

// zenityArgs returns the zenity argument list for p. Markup is disabled so
// the message is shown verbatim.
func zenityArgs(p Prompt) []string {
	args := []string{
		"--question",
		"--no-markup",
		"--title=" + p.Title,
		"--text=" + p.Message,
		"--ok-label=" + p.AcceptLabel,
		"--cancel-label=" + p.DeclineLabel,
	}
	if p.IconPath != "" {
		args = append(args, "--window-icon="+p.IconPath)
	}
	return args
}

// zenityAccepted maps a zenity exit status: 0 accept, 1 decline or window
// closed, 5 timeout. Anything else is a failure to show the dialog.
func zenityAccepted(code int) (bool, error) {
	switch code {
	case 0:
		return true, nil
	case 1, 5:
		return false, nil
	default:
		return false, fmt.Errorf("zenity exited with status %d", code)
	}
}

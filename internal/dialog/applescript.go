package dialog

// dialogScript is an osascript run handler taking
// message, title, accept label, decline label and an optional icon path.
// Decline is the cancel button, so choosing it raises error -128.
var dialogScript = []string{
	"on run argv",
	"set theMessage to item 1 of argv",
	"set theTitle to item 2 of argv",
	"set acceptLabel to item 3 of argv",
	"set declineLabel to item 4 of argv",
	"set hasIcon to (count of argv) > 4",
	"if hasIcon then set theIcon to (POSIX file (item 5 of argv)) as alias",
	`tell application "System Events"`,
	"activate",
	"if hasIcon then",
	"set theReply to display dialog theMessage with title theTitle buttons {declineLabel, acceptLabel} default button acceptLabel cancel button declineLabel with icon theIcon",
	"else",
	"set theReply to display dialog theMessage with title theTitle buttons {declineLabel, acceptLabel} default button acceptLabel cancel button declineLabel",
	"end if",
	"end tell",
	"return button returned of theReply",
	"end run",
}

// scriptArgs returns the argv for dialogScript.
func scriptArgs(p Prompt) []string {
	args := []string{p.Message, p.Title, p.AcceptLabel, p.DeclineLabel}
	if p.IconPath != "" {
		args = append(args, p.IconPath)
	}
	return args
}

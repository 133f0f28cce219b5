package platform

import "fmt"

// AutoRunKeys are the registry keys whose AutoRun value cmd.exe executes on
// every start.
var AutoRunKeys = []string{
	`HKCU\Software\Microsoft\Command Processor`,
	`HKLM\Software\Microsoft\Command Processor`,
}

// AutoRunHelpURL explains how AutoRun moves new shells to another directory.
const AutoRunHelpURL = "https://blogs.msdn.microsoft.com/oldnewthing/20071121-00/?p=24433/"

// AutoRunRemediation returns the arguments to `reg` that clear each of
// AutoRunKeys.
func AutoRunRemediation() []string {
	cmds := make([]string, len(AutoRunKeys))
	for i, key := range AutoRunKeys {
		cmds[i] = fmt.Sprintf(`delete "%s" /v AutoRun /f`, key)
	}
	return cmds
}

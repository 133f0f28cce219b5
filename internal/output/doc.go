// Package output provides styled terminal output for the CLI.
//
// Messages go through a Printer bound to an io.Writer so components can be
// tested against a buffer. Inline helpers (Cyan, Green, Red, Bold) style a
// fragment of a larger line, the way the messages highlight package names,
// paths and commands.
//
// Example:
//
//	out := output.New(os.Stdout)
//	out.Info("Installing packages. This might take a couple of minutes.")
//	out.Println("  " + output.Cyan("yarn add --exact react") + " has failed.")
package output

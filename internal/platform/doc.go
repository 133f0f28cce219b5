// Package platform holds the few operating-system differences the scaffolder
// cares about: permission bits that only exist on Unix, and the cmd.exe
// AutoRun setting that can make a freshly spawned npm start in the wrong
// directory on Windows.
package platform

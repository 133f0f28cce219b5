// Package scaffold runs the create-app workflow: name validation, the
// directory guard, the initial package.json, toolchain selection, install,
// version patching and delegation to the installed init script.
//
// Steps run strictly in order and stop at the first failure. Failures from
// install onwards go through project.Recovery before Run returns, so a
// failed run leaves nothing it generated behind.
package scaffold

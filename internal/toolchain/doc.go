// Package toolchain picks the package manager for a run and drives it.
//
// It covers everything that talks to npm or yarn: the presence probe and
// working-directory check behind [Selector], the registry reachability check
// in [Probe], lock-file seeding, and the dependency install itself in
// [Installer]. All subprocesses go through a [Runner] and always run with
// their working directory set to the project root.
package toolchain

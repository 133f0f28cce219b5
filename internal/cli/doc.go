// Package cli defines the Cobra command tree for the create-react-app CLI.
// The root command takes the project directory and runs the scaffold
// pipeline; the remaining files each register one maintenance command
// (version, doctor, config). Commands only parse flags and format output;
// the work happens in the internal packages.
package cli

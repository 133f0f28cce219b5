// Package runtime hands a freshly installed project over to Node.js.
//
// The init script shipped by the installed dependency does the rest of the
// scaffolding. NodeRuntime spawns it with `node -e` and passes the run's
// arguments as a single JSON array.
package runtime

package runtime

import (
	"context"
	"fmt"
)

// Delegator hands control to an installed script and waits for it.
type Delegator interface {
	// Delegate evaluates source in dir with data passed as a JSON array.
	Delegate(ctx context.Context, dir string, data []string, source string) error
}

// InitSource returns the script that loads <pkg>/scripts/init.js and applies
// it to the JSON array passed after "--".
func InitSource(pkg string) string {
	return fmt.Sprintf(`var init = require('%s/scripts/init.js');
init.apply(null, JSON.parse(process.argv[1]));`, pkg)
}

// InitArgs returns the arguments init.js expects.
func InitArgs(root, appName, originalDir string) []string {
	return []string{root, appName, originalDir}
}

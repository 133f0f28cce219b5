package toolchain

// Kind is the package manager used for a run.
type Kind int

const (
	Npm Kind = iota
	Yarn
)

func (k Kind) String() string {
	if k == Yarn {
		return "yarn"
	}
	return "npm"
}

// Dependencies are installed into every new project, in this order.
var Dependencies = []string{"react", "react-dom", "react-scripts"}

// DelegationTarget is the dependency that ships the init script.
const DelegationTarget = "react-scripts"

// CaretPackages get their exact pins loosened after install.
var CaretPackages = []string{"react", "react-dom"}

const (
	// DefaultRegistryHost is resolved to decide whether yarn can go online.
	DefaultRegistryHost = "registry.yarnpkg.com"
	// DefaultYarnRegistry is the registry the cached lock file was built against.
	DefaultYarnRegistry = "https://registry.yarnpkg.com"
)

package toolchain

import (
	"context"
	"io"
	"log/slog"
	"net"
	"os"

	"golang.org/x/term"
)

// Resolver looks up host names. *net.Resolver satisfies it.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Probe decides whether yarn should install online.
type Probe struct {
	resolver Resolver
	host     string
	logger   *slog.Logger

	spinnerOut io.Writer
}

// ProbeOption configures a Probe.
type ProbeOption func(*Probe)

// WithResolver replaces the system resolver.
func WithResolver(r Resolver) ProbeOption {
	return func(p *Probe) { p.resolver = r }
}

// WithSpinner renders a spinner to w while resolving. A nil w disables it.
func WithSpinner(w io.Writer) ProbeOption {
	return func(p *Probe) { p.spinnerOut = w }
}

// NewProbe returns a Probe that resolves host. An empty host means
// DefaultRegistryHost. A spinner is shown on stderr when it is a terminal.
func NewProbe(host string, logger *slog.Logger, opts ...ProbeOption) *Probe {
	if host == "" {
		host = DefaultRegistryHost
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	p := &Probe{resolver: net.DefaultResolver, host: host, logger: logger}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		p.spinnerOut = os.Stderr
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Online reports whether the registry host resolves. npm is always treated
// as online and nothing is looked up for it.
func (p *Probe) Online(ctx context.Context, kind Kind) bool {
	if kind != Yarn {
		return true
	}
	if p.spinnerOut == nil {
		return p.lookup(ctx)
	}
	return withSpinner(p.spinnerOut, "Checking "+p.host, func() bool {
		return p.lookup(ctx)
	})
}

func (p *Probe) lookup(ctx context.Context) bool {
	addrs, err := p.resolver.LookupHost(ctx, p.host)
	if err != nil {
		p.logger.Debug("registry lookup failed", "host", p.host, "error", err)
		return false
	}
	p.logger.Debug("registry resolved", "host", p.host, "addrs", addrs)
	return true
}

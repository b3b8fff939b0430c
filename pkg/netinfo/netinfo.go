package netinfo

import (
	"net"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const publicLookupURL = "https://api.ipify.org"

type Option func(r *Resolver)

// WithPublicLookup also resolves the public address over HTTP during Resolve.
func WithPublicLookup() Option {
	return func(r *Resolver) {
		r.cli = resty.New().SetTimeout(5 * time.Second)
	}
}

func NewResolver(logger *zap.Logger, opts ...Option) *Resolver {
	r := &Resolver{logger: logger}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolver caches the host's name and first non-loopback IPv4 address.
// Resolution happens once, at startup, matching the one-shot contract of
// the display's hostname screen.
type Resolver struct {
	once   sync.Once
	logger *zap.Logger
	cli    *resty.Client

	hostname string
	ip       string
	public   string
}

func (r *Resolver) Resolve() {
	r.once.Do(func() {
		if name, err := os.Hostname(); err == nil {
			r.hostname = name
		} else {
			r.logger.With(zap.Error(err)).Info("hostname lookup failed")
		}

		ifaces, err := net.Interfaces()
		if err != nil {
			r.logger.With(zap.Error(err)).Info("interface listing failed")
		} else {
			r.ip = firstIPv4(ifaces)
		}

		if r.cli != nil {
			resp, err := r.cli.R().Get(publicLookupURL)
			if err != nil {
				r.logger.With(zap.Error(err)).Info("public ip lookup failed")
			} else {
				r.public = resp.String()
			}
		}

		r.logger.With(
			zap.String("hostname", r.hostname),
			zap.String("ip", r.ip),
			zap.String("public", r.public),
		).Debug("resolved")
	})
}

func (r *Resolver) Hostname() (string, error) {
	r.Resolve()
	if r.hostname == "" {
		return "", errors.New("hostname unavailable")
	}
	return r.hostname, nil
}

func (r *Resolver) IPAddress() string {
	r.Resolve()
	return r.ip
}

func (r *Resolver) PublicIP() string {
	r.Resolve()
	return r.public
}

func firstIPv4(ifaces []net.Interface) string {
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		if ip := FirstIPv4From(addrs); ip != "" {
			return ip
		}
	}
	return ""
}

// FirstIPv4From picks the first usable IPv4 address out of addrs.
func FirstIPv4From(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}

		if ip == nil || ip.IsLoopback() {
			continue
		}
		if v4 := ip.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}

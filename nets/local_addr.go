package nets

import (
	"context"
	"fmt"
	"net"
)

// IsLocalAddr reports whether a listen address is reachable only from this host or a private network.
// An empty host listens on every interface and is not local.
type IsLocalAddr func(ctx context.Context, addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(ctx context.Context, addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			return false, fmt.Errorf("listen address %q: %w", addr, err)
		}
		if host == "" {
			return false, nil
		}

		if ip := net.ParseIP(host); ip != nil {
			return isLocalIP(ip), nil
		}

		ips, err := net.DefaultResolver.LookupIP(ctx, "ip", host)
		if err != nil {
			// unresolvable hosts fail later at listen
			return false, nil
		}
		for _, ip := range ips {
			if !isLocalIP(ip) {
				return false, nil
			}
		}
		return len(ips) > 0, nil
	}
}

func isLocalIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate()
}

package transport

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// Candidate is one resolved, attemptable connection target.
type Candidate struct {
	// Network is "unix", "tcp4" or "tcp6".
	Network string
	// Address is the socket path, or an ip:port pair.
	Address string
}

func (c Candidate) String() string {
	return c.Network + "://" + c.Address
}

// InterfaceAddrsFunc lists the local interface addresses. It is used to decide
// which address families are configured on this host.
type InterfaceAddrsFunc func() ([]net.Addr, error)

// ResolveCandidates returns the ordered list of candidates for a connection
// target. A non-empty unixPath yields a single Unix-domain candidate and host
// and port are ignored. Otherwise host is resolved through r (any family,
// stream sockets) and the addresses are returned in resolver order.
//
// Resolution follows getaddrinfo's passive and address-config flags: an empty
// host yields the wildcard addresses, and families without a configured
// non-loopback address are dropped unless that would drop every candidate.
// There is no caching and no retry.
func ResolveCandidates(ctx context.Context, r Resolver, unixPath, host string, port int) ([]Candidate, error) {
	return resolveCandidates(ctx, r, net.InterfaceAddrs, unixPath, host, port)
}

func resolveCandidates(ctx context.Context, r Resolver, ifaddrs InterfaceAddrsFunc, unixPath, host string, port int) ([]Candidate, error) {
	if unixPath != "" {
		return []Candidate{{Network: "unix", Address: unixPath}}, nil
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}

	var ips []net.IP
	switch {
	case host == "":
		ips = []net.IP{net.IPv6unspecified, net.IPv4zero}
	case net.ParseIP(host) != nil:
		ips = []net.IP{net.ParseIP(host)}
	default:
		if r == nil {
			r = net.DefaultResolver
		}
		addrs, err := r.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, err
		}
		for _, a := range addrs {
			ips = append(ips, a.IP)
		}
	}

	ips = filterConfiguredFamilies(ips, ifaddrs)

	portStr := strconv.Itoa(port)
	out := make([]Candidate, 0, len(ips))
	for _, ip := range ips {
		network := "tcp6"
		if ip.To4() != nil {
			network = "tcp4"
		}
		out = append(out, Candidate{
			Network: network,
			Address: net.JoinHostPort(ip.String(), portStr),
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no addresses found for %s", host)
	}
	return out, nil
}

// filterConfiguredFamilies drops IPv4 or IPv6 addresses when the host has no
// non-loopback address of that family. Loopback candidates are never dropped.
// If the filter would leave nothing, or the interfaces cannot be listed, the
// input is returned unchanged.
func filterConfiguredFamilies(ips []net.IP, ifaddrs InterfaceAddrsFunc) []net.IP {
	if ifaddrs == nil || len(ips) == 0 {
		return ips
	}
	addrs, err := ifaddrs()
	if err != nil {
		return ips
	}

	var have4, have6 bool
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ipnet.IP.To4() != nil {
			have4 = true
		} else {
			have6 = true
		}
	}
	if !have4 && !have6 {
		return ips
	}

	kept := make([]net.IP, 0, len(ips))
	for _, ip := range ips {
		is4 := ip.To4() != nil
		if ip.IsLoopback() || (is4 && have4) || (!is4 && have6) {
			kept = append(kept, ip)
		}
	}
	if len(kept) == 0 {
		return ips
	}
	return kept
}

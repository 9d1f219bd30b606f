package feature

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// defaultRemotePort is the flagd default listen port, used when the
// options URI omits one.
const defaultRemotePort = 8013

// Endpoint holds the connection parameters of a remote evaluation
// service.
type Endpoint struct {
	Host string
	Port uint16
	TLS  bool
}

// ParseEndpoint parses an options URI of the form scheme://host:port.
// A secure scheme (https, grpcs) enables TLS. A malformed URI is a
// configuration bug and the one failure the remote constructor surfaces.
func ParseEndpoint(options string) (Endpoint, error) {
	u, err := url.Parse(options)
	if err != nil {
		return Endpoint{}, fmt.Errorf("feature: parse endpoint %q: %w", options, err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return Endpoint{}, fmt.Errorf("feature: endpoint %q must have the form scheme://host:port", options)
	}

	ep := Endpoint{Host: u.Hostname(), Port: defaultRemotePort}
	switch strings.ToLower(u.Scheme) {
	case "https", "grpcs":
		ep.TLS = true
	}
	if p := u.Port(); p != "" {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return Endpoint{}, fmt.Errorf("feature: endpoint %q has an invalid port: %w", options, err)
		}
		ep.Port = uint16(n)
	}
	return ep, nil
}

// Addr returns host:port.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// FromRequest returns the client IP of r. Headers in trusted are tried in
// order; the first one holding a valid address wins. X-Forwarded-For style
// lists yield their left-most valid entry. Returns "" if nothing parses.
func FromRequest(r *http.Request, trusted ...string) string {
	for _, name := range trusted {
		value := r.Header.Get(name)
		if value == "" {
			continue
		}
		for part := range strings.SplitSeq(value, ",") {
			if ip := normalize(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

// normalize parses s and returns its canonical text form.
// IPv4-mapped IPv6 addresses are reduced to IPv4.
func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}

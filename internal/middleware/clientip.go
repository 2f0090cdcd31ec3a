package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// ClientIP returns the caller's address without the port. X-Forwarded-For
// is only read when the direct peer is a trusted proxy; the result is then
// the rightmost hop that is not itself a trusted proxy.
func (m *Middleware) ClientIP(r *http.Request) string {
	peer := remoteHost(r.RemoteAddr)

	if !m.isTrusted(peer) {
		return peer
	}
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return peer
	}

	hops := strings.Split(forwarded, ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if !m.isTrusted(hop) {
			return hop
		}
	}
	return strings.TrimSpace(hops[0])
}

func (m *Middleware) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range m.trustedProxies {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteHost(remoteAddr string) string {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return host
}

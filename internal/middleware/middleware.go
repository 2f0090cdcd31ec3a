package middleware

import (
	"context"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/logger"
)

// Counter is the slice of Redis the rate limiter needs
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Middleware holds all HTTP middleware
type Middleware struct {
	counter        Counter
	log            *logger.Logger
	cfg            *config.Config
	trustedProxies []netip.Prefix
}

// New creates a new Middleware instance
func New(counter Counter, log *logger.Logger, cfg *config.Config) *Middleware {
	return &Middleware{
		counter:        counter,
		log:            log,
		cfg:            cfg,
		trustedProxies: parseTrustedProxies(cfg.Security.TrustedProxies, log),
	}
}

func parseTrustedProxies(entries []string, log *logger.Logger) []netip.Prefix {
	var prefixes []netip.Prefix
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				log.Warn().Err(err).Str("entry", entry).Msg("ignoring invalid trusted proxy")
				continue
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("ignoring invalid trusted proxy")
			continue
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes
}

func writeJSONError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParseBlocklist turns CIDRs and bare addresses into networks.
// Unparseable entries are returned separately so callers can log them.
func ParseBlocklist(entries []string) (nets []*net.IPNet, invalid []string) {
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				invalid = append(invalid, entry)
				continue
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			invalid = append(invalid, entry)
			continue
		}
		nets = append(nets, ipNet)
	}
	return nets, invalid
}

// IPFilterMiddleware rejects requests from security.blocked_ips
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blocked, _ := ParseBlocklist(blocklist)

	return func(c *gin.Context) {
		if len(blocked) == 0 {
			c.Next()
			return
		}

		clientIP := net.ParseIP(c.ClientIP())
		if clientIP == nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		for _, ipNet := range blocked {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		c.Next()
	}
}

// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RedactingLogger, a structured HTTP logger that scrubs
// obvious PII from request metadata before emitting logs. It never logs
// request or response bodies, replaces common identifiers (emails, phone
// numbers, UUIDs) in queries and header values, and fully masks sensitive
// headers (Authorization, Cookie, Set-Cookie, plus any configured extras).
//
// Scrubbing reduces but does not eliminate the risk of sensitive data leaking
// to logs; clients should still keep PII out of query strings and headers.
package middleware

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RedactOptions configures extra scrub behavior for RedactingLogger.
// MaskHeaders lists additional header names whose values are replaced with
// "[REDACTED]"; matching is case-insensitive and merged with the built-ins.
type RedactOptions struct {
	MaskHeaders []string
}

// Scrub patterns, compiled once. UUIDs must be redacted before phone numbers
// so the loose phone pattern cannot match a UUID's digit segments.
var (
	redactUUIDRE  = regexp.MustCompile(`(?i)\b[0-9a-f]{8}\-[0-9a-f]{4}\-[1-5][0-9a-f]{3}\-[89ab][0-9a-f]{3}\-[0-9a-f]{12}\b`)
	redactEmailRE = regexp.MustCompile(`(?i)\b[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}\b`)
	redactPhoneRE = regexp.MustCompile(`\b(?:\+?\d{1,3}[ .-]?)?(?:\(?\d{2,4}\)?[ .-]?)?\d{3,4}[ .-]?\d{4}\b`)
)

// redactPII replaces identifiers in s with typed placeholders.
func redactPII(s string) string {
	if s == "" {
		return s
	}
	out := redactUUIDRE.ReplaceAllString(s, "[REDACTED:id]")
	out = redactEmailRE.ReplaceAllString(out, "[REDACTED:email]")
	out = redactPhoneRE.ReplaceAllString(out, "[REDACTED:phone]")
	return out
}

// RedactingLogger returns a Gin middleware that logs requests and responses
// with sensitive values scrubbed. It logs method, path, query, status,
// response size, latency, and scrubbed request headers, at info level by
// default, warn for 4xx, and error for 5xx.
func RedactingLogger(opts RedactOptions) gin.HandlerFunc {
	maskHeaders := map[string]struct{}{
		"authorization": {},
		"cookie":        {},
		"set-cookie":    {},
	}
	for _, h := range opts.MaskHeaders {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			maskHeaders[h] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		safeQuery := redactPII(c.Request.URL.RawQuery)

		safeHeaders := make(map[string]string, len(c.Request.Header))
		for k, vv := range c.Request.Header {
			if _, masked := maskHeaders[strings.ToLower(k)]; masked {
				safeHeaders[k] = "[REDACTED]"
				continue
			}
			safeHeaders[k] = redactPII(strings.Join(vv, ", "))
		}

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		reqID := c.Writer.Header().Get(requestIDHeader)
		if reqID == "" {
			reqID = c.GetHeader(requestIDHeader)
		}

		ev := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		}

		ev.
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", safeQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", latency).
			Interface("headers", safeHeaders).
			Msg("http_request")
	}
}

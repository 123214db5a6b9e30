package logging

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders carry credentials: the admin bearer token, the hosted
// backend's apikey and session cookies. Keys are lowercase.
var sensitiveHeaders = []string{"authorization", "apikey", "x-api-key", "cookie", "set-cookie"}

// IsSensitiveHeader reports whether the named header must never be logged.
func IsSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	for _, h := range sensitiveHeaders {
		if h == name {
			return true
		}
	}
	return false
}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three base64url segments of at least 10 characters, so version
	// strings like 1.2.3 survive.
	jwtPattern       = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	inlineKeyPattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	// Signed storage links carry their credential in the query string.
	signedURLPattern = regexp.MustCompile(`(?i)[?&](token|x-amz-signature|x-amz-credential)=[^&\s"]+`)
)

// Field names of configuration secrets and of contact-form personal data.
var sensitiveFields = []string{
	"password", "secret", "token", "jwt_secret", "dsn", "api_key",
	"service_key", "phone", "sender_email",
}

func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveFields)+6)
	for _, name := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(inlineKeyPattern),
		masq.WithRegex(signedURLPattern),
	)
	return masq.New(opts...)
}

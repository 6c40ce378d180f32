// Package raw reads environment variables without logging, for the logger's own bootstrap
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed view of the environment
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix returns a view under an extra prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value or def when blank
func (c Conf) Get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(c.prefix + key)); v != "" {
		return v
	}
	return def
}

// GetBool returns def when blank or unparseable
func (c Conf) GetBool(key string, def bool) bool {
	v, err := strconv.ParseBool(c.Get(key, ""))
	if err != nil {
		return def
	}
	return v
}

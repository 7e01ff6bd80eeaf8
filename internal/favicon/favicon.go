// Package favicon derives fallback icon URLs for links without an
// explicit icon.
package favicon

import (
	"fmt"
	"net/url"
)

// URL derives a Google S2 favicon URL from the hostname of link.
// It returns the empty string when link cannot be parsed or has no
// hostname; it never fails.
func URL(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=32", host)
}

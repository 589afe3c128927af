package render

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var schemeRe = regexp.MustCompile(`^https?://`)

// externalHref adds https:// to links typed without a scheme.
func externalHref(s string) string {
	if strings.HasPrefix(s, "http") {
		return s
	}
	return "https://" + s
}

// stripScheme is how websites are shown in the contact bar.
func stripScheme(s string) string {
	return schemeRe.ReplaceAllString(s, "")
}

// domainLabel turns a link into a short label such as "github.com".
func domainLabel(link string) string {
	parsed, err := url.Parse(externalHref(link))
	if err != nil {
		return "Link"
	}
	host := parsed.Hostname()
	if host == "" {
		return "Link"
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

package site

import (
	"net"
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// hostProfile maps like lookup but without STD3 rules, so intranet names
// such as my_host.local stay valid.
var hostProfile = idna.New(idna.MapForLookup(), idna.StrictDomainName(false))

// cleanText trims surrounding whitespace and folds to NFC so that visually
// identical labels compare equal.
func cleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

func isExternalLink(link string) bool { return schemePattern.MatchString(link) }

// checkLink returns a reason when link is neither scheme://host nor root-relative.
func checkLink(link string) string {
	switch {
	case link == "":
		return "must not be empty"
	case strings.HasPrefix(link, "//"):
		return "protocol-relative links are not supported"
	case strings.HasPrefix(link, "/"):
		if strings.ContainsAny(link, " \t\n") {
			return "path must not contain whitespace"
		}
		return ""
	case isExternalLink(link):
		u, err := url.Parse(link)
		if err != nil {
			return "malformed URL: " + err.Error()
		}
		if u.Hostname() == "" {
			return "absolute URL is missing a host"
		}
		host := u.Hostname()
		if net.ParseIP(host) != nil {
			return ""
		}
		if _, err := hostProfile.ToASCII(host); err != nil {
			return "invalid host " + host
		}
		return ""
	default:
		return "missing scheme or leading slash"
	}
}

// deriveText picks the final path segment of link ("/go/part1" -> "part1").
// External links with no path fall back to the host name.
func deriveText(link string) string {
	p := link
	if isExternalLink(link) {
		u, err := url.Parse(link)
		if err != nil {
			return ""
		}
		p = u.Path
		if strings.Trim(p, "/") == "" {
			return u.Hostname()
		}
	}
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	seg := path.Base(p)
	if unescaped, err := url.PathUnescape(seg); err == nil {
		seg = unescaped
	}
	return cleanText(strings.TrimSuffix(seg, ".html"))
}

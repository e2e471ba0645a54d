// Package parselink splits a URL-like string into the parts a browser
// location exposes: href, protocol, hostname, host, port, pathname, search,
// query and hash.
package parselink

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// Link maps part names to values. Every part is a string except "port",
// which is an int.
type Link map[string]interface{}

var defaultPorts = map[string]int{
	"http":   80,
	"ws":     80,
	"https":  443,
	"wss":    443,
	"ftp":    21,
	"gopher": 70,
}

// Parse never fails: strings net/url rejects are split on "?" and "#" only.
func Parse(s string) Link {
	link := Link{
		"href":     s,
		"protocol": "",
		"hostname": "",
		"host":     "",
		"port":     0,
		"pathname": "",
		"search":   "",
		"query":    "",
		"hash":     "",
	}

	u, err := url.Parse(s)
	if err != nil {
		rawSplit(link, s)
		return link
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "" {
		link["protocol"] = scheme + ":"
	}

	if u.Host != "" {
		hostname := asciiHostname(u.Hostname())
		link["hostname"] = hostname
		link["host"] = hostname
		if port := u.Port(); port != "" {
			if strings.Contains(hostname, ":") {
				link["host"] = "[" + hostname + "]:" + port
			} else {
				link["host"] = hostname + ":" + port
			}
			if n, err := strconv.Atoi(port); err == nil {
				link["port"] = n
			}
		} else if strings.Contains(hostname, ":") {
			link["host"] = "[" + hostname + "]"
		}
	}
	if link["port"] == 0 {
		link["port"] = defaultPorts[scheme]
	}

	switch {
	case u.Opaque != "":
		link["pathname"] = u.Opaque
	case u.Host != "" && u.EscapedPath() == "":
		link["pathname"] = "/"
	default:
		link["pathname"] = u.EscapedPath()
	}

	if u.RawQuery != "" {
		link["search"] = "?" + u.RawQuery
		link["query"] = u.RawQuery
	}
	if u.Fragment != "" {
		link["hash"] = "#" + u.EscapedFragment()
	}

	return link
}

func rawSplit(link Link, s string) {
	if i := strings.IndexByte(s, '#'); i != -1 {
		if i+1 < len(s) {
			link["hash"] = s[i:]
		}
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i != -1 {
		if i+1 < len(s) {
			link["search"] = s[i:]
			link["query"] = s[i+1:]
		}
		s = s[:i]
	}
	link["pathname"] = s
}

// asciiHostname lowercases a hostname and converts internationalised names
// to their punycode form. Names idna rejects are returned lowercased.
func asciiHostname(h string) string {
	h = strings.ToLower(h)
	if strings.Contains(h, ":") {
		return h
	}
	a, err := idna.Lookup.ToASCII(h)
	if err != nil {
		return h
	}
	return a
}

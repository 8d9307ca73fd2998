package catalog

import (
	"net/url"
	"strings"
)

// nextPageToken extracts the continuation token from a Link response header.
// The header carries comma-separated directives, each an angle-bracketed URL
// followed by attributes:
//
//	<https://shop.myshopify.com/...?page_info=abc&limit=250>; rel="next"
//
// The token is the page_info query parameter of the rel="next" directive's
// URL; any other parameters the URL carries are ignored. Parsing the URL
// instead of scanning the header string keeps the extraction stable when the
// server reorders parameters.
func nextPageToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}

	for _, directive := range strings.Split(header, ",") {
		rawURL, attrs, ok := splitDirective(strings.TrimSpace(directive))
		if !ok || !hasRel(attrs, "next") {
			continue
		}

		u, err := url.Parse(rawURL)
		if err != nil {
			continue
		}

		if token := u.Query().Get("page_info"); token != "" {
			return token, true
		}
	}

	return "", false
}

// splitDirective separates the angle-bracketed URL from its attribute list.
func splitDirective(directive string) (rawURL string, attrs []string, ok bool) {
	if !strings.HasPrefix(directive, "<") {
		return "", nil, false
	}

	end := strings.Index(directive, ">")
	if end < 0 {
		return "", nil, false
	}

	return directive[1:end], strings.Split(directive[end+1:], ";"), true
}

// hasRel reports whether the attribute list carries rel="want".
func hasRel(attrs []string, want string) bool {
	for _, attr := range attrs {
		key, value, found := strings.Cut(strings.TrimSpace(attr), "=")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}

		if strings.Trim(strings.TrimSpace(value), `"`) == want {
			return true
		}
	}
	return false
}

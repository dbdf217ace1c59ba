package chat

import (
	"net/url"
	"strings"
)

// ContactLink describes a deep link into the contact page. Unset fields are
// omitted from the query string.
type ContactLink struct {
	Department string
	Service    string
	Industry   string
	Type       string
}

// URL renders the relative contact-page URL with percent-encoded parameters.
// With no fields set the bare page is returned, without a trailing `?`.
func (l ContactLink) URL() string {
	var params []string
	add := func(key, val string) {
		if val != "" {
			params = append(params, key+"="+url.QueryEscape(val))
		}
	}
	add("dept", l.Department)
	add("service", l.Service)
	add("industry", l.Industry)
	add("type", l.Type)

	if len(params) == 0 {
		return "contact.html"
	}
	return "contact.html?" + strings.Join(params, "&")
}

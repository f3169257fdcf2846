package recoemail

import (
	"net/url"
	"strings"
)

// QueryParam is one name/value pair of a query string.
type QueryParam struct {
	Name  string
	Value string
}

// BuildQueryString joins params as name=value pairs separated by '&', in the
// given order. Values are percent-encoded (space becomes %20); pairs whose
// encoded value is empty are left out.
func BuildQueryString(params []QueryParam) string {
	var b strings.Builder
	for _, p := range params {
		encoded := escapeQueryValue(p.Value)
		if encoded == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(encoded)
	}
	return b.String()
}

func escapeQueryValue(v string) string {
	if v == "" {
		return ""
	}
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

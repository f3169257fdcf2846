package domain

import "fmt"

// URLKind tags a generated URL with the resource it requests.
type URLKind string

const (
	// URLKindImage fetches the recommended product's image.
	URLKindImage URLKind = "IMAGE_REQUEST"
	// URLKindProduct redirects to the recommended product's page.
	URLKindProduct URLKind = "PRODUCT_REQUEST"
)

func (k URLKind) String() string { return string(k) }

// URLResult is a single generated recommendation URL.
type URLResult struct {
	URL  string  `json:"url"`
	Kind URLKind `json:"kind"`
}

func (r URLResult) String() string {
	return fmt.Sprintf("%s %s", r.Kind, r.URL)
}

// FindURL returns the first result of the given kind.
func FindURL(results []URLResult, kind URLKind) (URLResult, bool) {
	for _, r := range results {
		if r.Kind == kind {
			return r, true
		}
	}
	return URLResult{}, false
}

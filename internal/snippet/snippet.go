// Package snippet renders the HTML for a recommendation slot from a
// generated image/product URL pair using a Liquid template.
package snippet

import (
	"errors"
	"fmt"

	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/osteele/liquid"
)

// DefaultTemplate links the recommended product image to the product page.
const DefaultTemplate = `<a href="{{ product_url | escape }}" target="_blank">` +
	`<img src="{{ image_url | escape }}" alt="{{ alt | default: "Recommended for you" | escape }}" border="0" /></a>`

// ErrIncompleteURLPair is returned when the URL set lacks an image or product URL.
var ErrIncompleteURLPair = errors.New("snippet: url set needs one image and one product url")

// Renderer holds a parsed slot template. It is safe for concurrent use.
type Renderer struct {
	engine *liquid.Engine
	tpl    *liquid.Template
}

// NewRenderer parses source, or DefaultTemplate when source is empty.
func NewRenderer(source string) (*Renderer, error) {
	if source == "" {
		source = DefaultTemplate
	}

	engine := liquid.NewEngine()
	// {{ email_type | humanize }} turns "Bopus1StoreOrderDelay" into "Bopus1 Store Order Delay".
	engine.RegisterFilter("humanize", humanize)

	tpl, err := engine.ParseString(source)
	if err != nil {
		return nil, fmt.Errorf("snippet: parse template: %w", err)
	}
	return &Renderer{engine: engine, tpl: tpl}, nil
}

// Slot is the data bound into the template besides the URLs.
type Slot struct {
	EmailType domain.EmailType
	Position  int
	Alt       string
}

// Render binds image_url, product_url, email_type, position and alt.
func (r *Renderer) Render(urls []domain.URLResult, slot Slot) (string, error) {
	img, ok := domain.FindURL(urls, domain.URLKindImage)
	if !ok {
		return "", ErrIncompleteURLPair
	}
	prd, ok := domain.FindURL(urls, domain.URLKindProduct)
	if !ok {
		return "", ErrIncompleteURLPair
	}

	bindings := map[string]any{
		"image_url":   img.URL,
		"product_url": prd.URL,
		"email_type":  string(slot.EmailType),
		"position":    slot.Position,
		"alt":         slot.Alt,
	}
	out, err := r.tpl.RenderString(bindings)
	if err != nil {
		return "", fmt.Errorf("snippet: render: %w", err)
	}
	return out, nil
}

func humanize(value any) string {
	s := fmt.Sprintf("%v", value)
	out := make([]rune, 0, len(s)+8)
	for i, c := range s {
		if i > 0 && c >= 'A' && c <= 'Z' {
			out = append(out, ' ')
		}
		out = append(out, c)
	}
	return string(out)
}

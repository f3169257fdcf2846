package recoemail

import (
	"strconv"

	"github.com/ignite/recommendations-email-client/internal/domain"
)

const (
	singleImageRecoPath   = "imgreq/single"
	singleProductRecoPath = "prdreq/single"
)

// Slot identifies one recommendation slot in an email. Every scenario
// requires all four fields.
type Slot struct {
	ChannelID   domain.ChannelID
	EmailType   domain.EmailType
	PlacementID domain.PlacementID
	Position    int
}

// SingleRecoGenerator builds URLs that each return exactly one recommended
// product. Inputs are expected to be validated by the caller.
type SingleRecoGenerator struct {
	imageBaseURL   string
	productBaseURL string
}

// NewSingleRecoGenerator derives the image and product resource URLs from
// the email recommendations base URL, which must end with '/'.
func NewSingleRecoGenerator(baseURL string) (*SingleRecoGenerator, error) {
	if !ValidBaseURL(baseURL) {
		return nil, newInvalidParameter(MsgInvalidBaseURL)
	}
	return &SingleRecoGenerator{
		imageBaseURL:   baseURL + singleImageRecoPath,
		productBaseURL: baseURL + singleProductRecoPath,
	}, nil
}

// ImageURL returns the URL that fetches the recommended product's image.
func (g *SingleRecoGenerator) ImageURL(slot Slot, ccp *ContextMap) domain.URLResult {
	return domain.URLResult{
		URL:  withQuery(g.imageBaseURL, slotQueryString(slot, ccp)),
		Kind: domain.URLKindImage,
	}
}

// ProductURL returns the URL that redirects to the recommended product's page.
func (g *SingleRecoGenerator) ProductURL(slot Slot, ccp *ContextMap) domain.URLResult {
	return domain.URLResult{
		URL:  withQuery(g.productBaseURL, slotQueryString(slot, ccp)),
		Kind: domain.URLKindProduct,
	}
}

// Pair returns the image URL followed by the product URL.
func (g *SingleRecoGenerator) Pair(slot Slot, ccp *ContextMap) []domain.URLResult {
	return []domain.URLResult{g.ImageURL(slot, ccp), g.ProductURL(slot, ccp)}
}

func slotQueryString(slot Slot, ccp *ContextMap) string {
	params := make([]QueryParam, 0, 5)
	params = append(params,
		QueryParam{Name: domain.QueryChannelID.String(), Value: slot.ChannelID.String()},
		QueryParam{Name: domain.QueryEmailType.String(), Value: slot.EmailType.String()},
		QueryParam{Name: domain.QueryPlacementID.String(), Value: slot.PlacementID.String()},
		QueryParam{Name: domain.QueryPosition.String(), Value: strconv.Itoa(slot.Position)},
	)
	if token := EncodeContext(ccp); token != "" {
		params = append(params, QueryParam{Name: domain.QueryCCP.String(), Value: token})
	}
	return BuildQueryString(params)
}

func withQuery(base, query string) string {
	if query == "" {
		return base
	}
	return base + "?" + query
}

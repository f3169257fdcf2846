package recoemail

import (
	"strconv"
	"strings"

	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/ignite/recommendations-email-client/internal/pkg/logger"
)

const emailRecommendationsPath = "v1/ede/email/recommendations"

// Scenario names the business case a URL pair is generated for.
type Scenario string

const (
	ScenarioKohlsCash  Scenario = "kohls_cash"
	ScenarioShipment   Scenario = "shipment"
	ScenarioPrePickup  Scenario = "bopus_pre_pickup"
	ScenarioPostPickup Scenario = "bopus_post_pickup"
)

// Generator produces single-recommendation image and product URLs for the
// supported email scenarios. It is immutable after New and safe for
// concurrent use.
type Generator struct {
	protocol string
	hostname string
	port     int
	baseURL  string

	single *SingleRecoGenerator
	hasher EmailHasher
}

// Option configures a Generator.
type Option func(*Generator)

// WithEmailHasher replaces DefaultEmailHasher.
func WithEmailHasher(h EmailHasher) Option {
	return func(g *Generator) {
		if h != nil {
			g.hasher = h
		}
	}
}

// New validates protocol, hostname and port, in that order, and returns a
// Generator rooted at {protocol}://{hostname}[:{port}]/v1/ede/email/recommendations/.
// Protocol and hostname are lowercased; port 0 leaves the port out.
func New(protocol, hostname string, port int, opts ...Option) (*Generator, error) {
	if !ValidProtocol(protocol) {
		return nil, newInvalidParameter(MsgInvalidProtocol)
	}
	if !ValidHostname(hostname) {
		return nil, newInvalidParameter(MsgInvalidHostname)
	}
	if !ValidPort(port) {
		return nil, newInvalidParameter(MsgInvalidPort)
	}

	g := &Generator{
		protocol: strings.ToLower(protocol),
		hostname: strings.ToLower(hostname),
		port:     port,
		hasher:   DefaultEmailHasher,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.baseURL = emailRecommendationsBaseURL(g.protocol, g.hostname, g.port)

	single, err := NewSingleRecoGenerator(g.baseURL)
	if err != nil {
		return nil, err
	}
	g.single = single
	return g, nil
}

func emailRecommendationsBaseURL(protocol, hostname string, port int) string {
	var b strings.Builder
	b.WriteString(protocol)
	b.WriteString("://")
	b.WriteString(hostname)
	if port != 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(port))
	}
	b.WriteByte('/')
	b.WriteString(emailRecommendationsPath)
	b.WriteByte('/')
	return b.String()
}

func (g *Generator) Protocol() string { return g.protocol }
func (g *Generator) Hostname() string { return g.hostname }
func (g *Generator) Port() int        { return g.port }

// BaseURL returns the email recommendations base URL, ending with '/'.
func (g *Generator) BaseURL() string { return g.baseURL }

// KohlsCashRequest carries the inputs of a Kohl's cash offer email. The
// amounts and the email are optional; each is added to the ccp on its own.
type KohlsCashRequest struct {
	Slot
	Amount        *float64
	LowerLimit    *float64
	UpperLimit    *float64
	CustomerEmail string
}

// KohlsCashSingleRecoURLs returns the image and product URLs for a Kohl's
// cash offer slot.
func (g *Generator) KohlsCashSingleRecoURLs(req KohlsCashRequest) ([]domain.URLResult, error) {
	if err := validateSlot(req.Slot); err != nil {
		return nil, err
	}

	ccp := &ContextMap{}
	if req.Amount != nil {
		ccp.Set(domain.CCPKohlsCashAmount, FormatAmount(*req.Amount))
	}
	if req.LowerLimit != nil {
		ccp.Set(domain.CCPKohlsCashLowerLimit, FormatAmount(*req.LowerLimit))
	}
	if req.UpperLimit != nil {
		ccp.Set(domain.CCPKohlsCashUpperLimit, FormatAmount(*req.UpperLimit))
	}
	if hash := hashCustomerEmail(g.hasher, req.CustomerEmail); hash != "" {
		ccp.Set(domain.CCPCustomerEmailHash, hash)
	}

	return g.generate(ScenarioKohlsCash, req.Slot, ccp), nil
}

// ShipmentRequest carries the inputs of a partial or complete shipment email.
type ShipmentRequest struct {
	Slot
	ProductNumbers []string
	CustomerEmail  string
}

// ShipmentSingleRecoURLs returns the image and product URLs for a shipment
// notice slot.
func (g *Generator) ShipmentSingleRecoURLs(req ShipmentRequest) ([]domain.URLResult, error) {
	if err := validateSlot(req.Slot); err != nil {
		return nil, err
	}

	ccp := &ContextMap{}
	if len(req.ProductNumbers) > 0 {
		ccp.Set(domain.CCPProductNumbers, strings.Join(req.ProductNumbers, ","))
	}
	if hash := hashCustomerEmail(g.hasher, req.CustomerEmail); hash != "" {
		ccp.Set(domain.CCPCustomerEmailHash, hash)
	}

	return g.generate(ScenarioShipment, req.Slot, ccp), nil
}

// PrePickupRequest carries the inputs of a BOPUS email sent before the
// order is picked up. Product numbers, store numbers and the customer email
// are required.
type PrePickupRequest struct {
	Slot
	ProductNumbers []string
	StoreNumbers   []string
	CustomerEmail  string
	OrderNumber    string
	AtgID          string
}

// PrePickupBopusSingleRecoURLs returns the image and product URLs for a
// BOPUS slot before pickup.
func (g *Generator) PrePickupBopusSingleRecoURLs(req PrePickupRequest) ([]domain.URLResult, error) {
	if err := validateSlot(req.Slot); err != nil {
		return nil, err
	}
	if !ValidProductNumbers(req.ProductNumbers) {
		return nil, newInvalidParameter(MsgInvalidProductNumbers)
	}
	if !ValidStoreNumbers(req.StoreNumbers) {
		return nil, newInvalidParameter(MsgInvalidStoreNumbers)
	}
	if !ValidCustomerEmail(req.CustomerEmail) {
		return nil, newInvalidParameter(MsgInvalidCustomerEmail)
	}

	ccp := &ContextMap{}
	ccp.Set(domain.CCPProductNumbers, strings.Join(req.ProductNumbers, ","))
	ccp.Set(domain.CCPStoreNumbers, strings.Join(req.StoreNumbers, ","))
	ccp.Set(domain.CCPCustomerEmailHash, hashCustomerEmail(g.hasher, req.CustomerEmail))
	if req.OrderNumber != "" {
		ccp.Set(domain.CCPOrderNumber, req.OrderNumber)
	}
	if req.AtgID != "" {
		ccp.Set(domain.CCPAtgID, req.AtgID)
	}

	return g.generate(ScenarioPrePickup, req.Slot, ccp), nil
}

// PostPickupRequest carries the inputs of a BOPUS email sent after pickup.
type PostPickupRequest struct {
	Slot
	CustomerEmail string
	AtgID         string
}

// PostPickupBopusSingleRecoURLs returns the image and product URLs for a
// BOPUS slot after pickup.
func (g *Generator) PostPickupBopusSingleRecoURLs(req PostPickupRequest) ([]domain.URLResult, error) {
	if err := validateSlot(req.Slot); err != nil {
		return nil, err
	}
	if !ValidCustomerEmail(req.CustomerEmail) {
		return nil, newInvalidParameter(MsgInvalidCustomerEmail)
	}

	ccp := &ContextMap{}
	ccp.Set(domain.CCPCustomerEmailHash, hashCustomerEmail(g.hasher, req.CustomerEmail))
	if req.AtgID != "" {
		ccp.Set(domain.CCPAtgID, req.AtgID)
	}

	return g.generate(ScenarioPostPickup, req.Slot, ccp), nil
}

func (g *Generator) generate(scenario Scenario, slot Slot, ccp *ContextMap) []domain.URLResult {
	urls := g.single.Pair(slot, ccp)
	logger.Debug("recoemail: generated single reco urls",
		"scenario", scenario,
		"email_type", slot.EmailType,
		"position", slot.Position,
		"ccp_params", ccp.Len(),
	)
	return urls
}

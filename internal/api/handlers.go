package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/ignite/recommendations-email-client/internal/pkg/httputil"
	"github.com/ignite/recommendations-email-client/internal/recoemail"
	"github.com/ignite/recommendations-email-client/internal/snippet"
)

// URLGenerator is the part of *recoemail.Generator the handlers use.
type URLGenerator interface {
	BaseURL() string
	KohlsCashSingleRecoURLs(recoemail.KohlsCashRequest) ([]domain.URLResult, error)
	ShipmentSingleRecoURLs(recoemail.ShipmentRequest) ([]domain.URLResult, error)
	PrePickupBopusSingleRecoURLs(recoemail.PrePickupRequest) ([]domain.URLResult, error)
	PostPickupBopusSingleRecoURLs(recoemail.PostPickupRequest) ([]domain.URLResult, error)
}

// SnippetRenderer renders the HTML for a URL pair.
type SnippetRenderer interface {
	Render(urls []domain.URLResult, slot snippet.Slot) (string, error)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	generator URLGenerator
	snippets  SnippetRenderer
	newID     func() string
	started   time.Time
}

// NewHandlers creates a new Handlers instance. snippets may be nil, in which
// case ?snippet=true is rejected.
func NewHandlers(generator URLGenerator, snippets SnippetRenderer) *Handlers {
	return &Handlers{
		generator: generator,
		snippets:  snippets,
		newID:     uuid.NewString,
		started:   time.Now(),
	}
}

// URLsResponse is returned by every generation endpoint.
type URLsResponse struct {
	ID       string             `json:"id"`
	Scenario recoemail.Scenario `json:"scenario"`
	URLs     []domain.URLResult `json:"urls"`
	Snippet  string             `json:"snippet,omitempty"`
}

// HealthCheck returns service status and the configured base URL.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"base_url":  h.generator.BaseURL(),
	})
}

// Enums lists the accepted channel, email type and placement wire names.
func (h *Handlers) Enums(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]interface{}{
		"channel_ids":   domain.ChannelIDs(),
		"email_types":   domain.EmailTypes(),
		"placement_ids": domain.PlacementIDs(),
	})
}

// KohlsCash handles POST /v1/urls/kohls-cash.
func (h *Handlers) KohlsCash(w http.ResponseWriter, r *http.Request) {
	var body kohlsCashBody
	if !httputil.Decode(w, r, &body) {
		return
	}
	urls, err := h.generator.KohlsCashSingleRecoURLs(body.request())
	h.respond(w, r, recoemail.ScenarioKohlsCash, body.slotBody, urls, err)
}

// Shipment handles POST /v1/urls/shipment.
func (h *Handlers) Shipment(w http.ResponseWriter, r *http.Request) {
	var body shipmentBody
	if !httputil.Decode(w, r, &body) {
		return
	}
	urls, err := h.generator.ShipmentSingleRecoURLs(body.request())
	h.respond(w, r, recoemail.ScenarioShipment, body.slotBody, urls, err)
}

// PrePickup handles POST /v1/urls/bopus/pre-pickup.
func (h *Handlers) PrePickup(w http.ResponseWriter, r *http.Request) {
	var body prePickupBody
	if !httputil.Decode(w, r, &body) {
		return
	}
	urls, err := h.generator.PrePickupBopusSingleRecoURLs(body.request())
	h.respond(w, r, recoemail.ScenarioPrePickup, body.slotBody, urls, err)
}

// PostPickup handles POST /v1/urls/bopus/post-pickup.
func (h *Handlers) PostPickup(w http.ResponseWriter, r *http.Request) {
	var body postPickupBody
	if !httputil.Decode(w, r, &body) {
		return
	}
	urls, err := h.generator.PostPickupBopusSingleRecoURLs(body.request())
	h.respond(w, r, recoemail.ScenarioPostPickup, body.slotBody, urls, err)
}

// DecodeCCP handles POST /v1/ccp/decode and returns the parameters carried
// by a ccp token.
func (h *Handlers) DecodeCCP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token string `json:"token"`
	}
	if !httputil.Decode(w, r, &body) {
		return
	}
	if body.Token == "" {
		httputil.BadRequest(w, "token is required")
		return
	}
	params, err := recoemail.DecodeContext(body.Token)
	if err != nil {
		httputil.BadRequest(w, "invalid ccp token")
		return
	}
	httputil.OK(w, map[string]interface{}{"params": params})
}

func (h *Handlers) respond(w http.ResponseWriter, r *http.Request, scenario recoemail.Scenario, slot slotBody, urls []domain.URLResult, err error) {
	if err != nil {
		respondGenerationError(w, scenario, err)
		return
	}
	recordGenerated(scenario)

	resp := URLsResponse{
		ID:       h.newID(),
		Scenario: scenario,
		URLs:     urls,
	}

	if wantSnippet(r) {
		if h.snippets == nil {
			httputil.BadRequest(w, "snippet rendering is not configured")
			return
		}
		html, err := h.snippets.Render(urls, snippet.Slot{
			EmailType: slot.EmailType,
			Position:  slot.position(),
			Alt:       slot.Alt,
		})
		if err != nil {
			httputil.InternalError(w, err)
			return
		}
		resp.Snippet = html
	}

	httputil.OK(w, resp)
}

func wantSnippet(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("snippet"))
	return err == nil && v
}

package recoemail

import (
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHost      = "api-atg.kohls.com"
	testEmail     = "abc@gmail.com"
	imgURLPrefix  = "https://api-atg.kohls.com/v1/ede/email/recommendations/imgreq/single?"
	prodURLPrefix = "https://api-atg.kohls.com/v1/ede/email/recommendations/prdreq/single?"
)

// fixedHasher makes expected ccp tokens independent of the hash algorithm.
type fixedHasher string

func (h fixedHasher) Hash(string) string { return string(h) }

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := New("https", testHost, 0, opts...)
	require.NoError(t, err)
	return g
}

func assertInvalid(t *testing.T, err error, msg string) {
	t.Helper()
	ipe, ok := IsInvalidParameter(err)
	require.True(t, ok, "expected InvalidParameterError, got %v", err)
	assert.Equal(t, msg, ipe.Message)
}

// assertPair checks that urls holds one image and one product URL sharing query.
func assertPair(t *testing.T, urls []domain.URLResult, query string) {
	t.Helper()
	require.Len(t, urls, 2)

	img, ok := domain.FindURL(urls, domain.URLKindImage)
	require.True(t, ok)
	prd, ok := domain.FindURL(urls, domain.URLKindProduct)
	require.True(t, ok)

	assert.Equal(t, imgURLPrefix+query, img.URL)
	assert.Equal(t, prodURLPrefix+query, prd.URL)
}

func ccpOf(t *testing.T, rawURL string) map[string]string {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	token := u.Query().Get("ccp")
	if token == "" {
		return nil
	}
	m, err := DecodeContext(token)
	require.NoError(t, err)
	return m
}

func TestNew(t *testing.T) {
	g, err := New("HTTPS", "API-ATG.Kohls.com", 443)
	require.NoError(t, err)

	assert.Equal(t, "https", g.Protocol())
	assert.Equal(t, testHost, g.Hostname())
	assert.Equal(t, 443, g.Port())
	assert.Equal(t, "https://api-atg.kohls.com:443/v1/ede/email/recommendations/", g.BaseURL())
}

func TestNewPortZeroOmitsPort(t *testing.T) {
	withPort, err := New("https", testHost, 443)
	require.NoError(t, err)
	noPort, err := New("https", testHost, 0)
	require.NoError(t, err)

	assert.Equal(t, "https://api-atg.kohls.com/v1/ede/email/recommendations/", noPort.BaseURL())
	assert.True(t, strings.HasSuffix(withPort.BaseURL(), "/v1/ede/email/recommendations/"))
	assert.Equal(t, withPort.BaseURL(), strings.Replace(noPort.BaseURL(), testHost, testHost+":443", 1))
}

func TestNewValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		protocol string
		host     string
		port     int
		want     string
	}{
		{"protocol checked first", "ftp", "", -1, MsgInvalidProtocol},
		{"empty protocol", "", testHost, 0, MsgInvalidProtocol},
		{"hostname before port", "http", "", 70000, MsgInvalidHostname},
		{"negative port", "http", testHost, -1, MsgInvalidPort},
		{"port too large", "http", testHost, 65536, MsgInvalidPort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.protocol, tt.host, tt.port)
			assert.Nil(t, g)
			assertInvalid(t, err, tt.want)
		})
	}
}

func TestKohlsCashRequiredParamsOnly(t *testing.T) {
	g := newTestGenerator(t)

	urls, err := g.KohlsCashSingleRecoURLs(KohlsCashRequest{Slot: testSlot()})
	require.NoError(t, err)

	assert.Equal(t, domain.URLKindImage, urls[0].Kind)
	assert.Equal(t, "https://api-atg.kohls.com/v1/ede/email/recommendations/imgreq/single?cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=0", urls[0].URL)
	assertPair(t, urls, "cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=0")
}

func TestKohlsCashAmountOnly(t *testing.T) {
	g := newTestGenerator(t)
	slot := testSlot()
	slot.ChannelID = domain.ChannelTransEmail

	urls, err := g.KohlsCashSingleRecoURLs(KohlsCashRequest{Slot: slot, Amount: Float(100.00)})
	require.NoError(t, err)

	assertPair(t, urls, "cid=TransEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=0&ccp=eyJrb2hsc0Nhc2hBbW91bnQiOiIxMDAuMCJ9")
	assert.Equal(t, map[string]string{"kohlsCashAmount": "100.0"}, ccpOf(t, urls[0].URL))
}

func TestKohlsCashAllParams(t *testing.T) {
	g := newTestGenerator(t, WithEmailHasher(fixedHasher("42")))

	urls, err := g.KohlsCashSingleRecoURLs(KohlsCashRequest{
		Slot:          testSlot(),
		Amount:        Float(100),
		LowerLimit:    Float(15.65),
		UpperLimit:    Float(25.76),
		CustomerEmail: testEmail,
	})
	require.NoError(t, err)

	assertPair(t, urls, "cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=0&ccp=eyJrb2hsc0Nhc2hBbW91bnQiOiIxMDAuMCIsImtvaGxzQ2FzaExvd2VyTGltaXQiOiIxNS42NSIsImtvaGxzQ2FzaFVwcGVyTGltaXQiOiIyNS43NiIsImN1c3RvbWVyRW1haWxIYXNoIjoiNDIifQ")
}

func TestKohlsCashExplicitZeroIsPresent(t *testing.T) {
	g := newTestGenerator(t)

	urls, err := g.KohlsCashSingleRecoURLs(KohlsCashRequest{Slot: testSlot(), LowerLimit: Float(0)})
	require.NoError(t, err)

	assertPair(t, urls, "cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=0&ccp=eyJrb2hsc0Nhc2hMb3dlckxpbWl0IjoiMC4wIn0")
}

func TestKohlsCashHashesEmail(t *testing.T) {
	g := newTestGenerator(t)

	urls, err := g.KohlsCashSingleRecoURLs(KohlsCashRequest{Slot: testSlot(), CustomerEmail: testEmail})
	require.NoError(t, err)

	ccp := ccpOf(t, urls[1].URL)
	assert.Equal(t, map[string]string{"customerEmailHash": HashCustomerEmail(testEmail)}, ccp)
	for _, u := range urls {
		assert.NotContains(t, u.URL, "gmail")
	}
}

func TestKohlsCashValidation(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name string
		mut  func(*Slot)
		want string
	}{
		{"channel", func(s *Slot) { s.ChannelID = "" }, MsgInvalidChannelID},
		{"email type", func(s *Slot) { s.EmailType = "" }, MsgInvalidEmailType},
		{"placement", func(s *Slot) { s.PlacementID = "" }, MsgInvalidPlacementID},
		{"position", func(s *Slot) { s.Position = -1 }, MsgInvalidPosition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := testSlot()
			tt.mut(&slot)
			urls, err := g.KohlsCashSingleRecoURLs(KohlsCashRequest{Slot: slot, Amount: Float(10)})
			assert.Nil(t, urls)
			assertInvalid(t, err, tt.want)
		})
	}
}

func TestShipment(t *testing.T) {
	g := newTestGenerator(t, WithEmailHasher(fixedHasher("42")))
	slot := testSlot()
	slot.EmailType = domain.EmailPartialShipment

	t.Run("required only", func(t *testing.T) {
		urls, err := g.ShipmentSingleRecoURLs(ShipmentRequest{Slot: slot})
		require.NoError(t, err)
		assertPair(t, urls, "cid=MktEmail&etype=PartialShipment&plid=Horizontal&pos=0")
	})

	t.Run("empty product list is omitted", func(t *testing.T) {
		urls, err := g.ShipmentSingleRecoURLs(ShipmentRequest{Slot: slot, ProductNumbers: []string{}})
		require.NoError(t, err)
		assertPair(t, urls, "cid=MktEmail&etype=PartialShipment&plid=Horizontal&pos=0")
	})

	t.Run("products and email", func(t *testing.T) {
		urls, err := g.ShipmentSingleRecoURLs(ShipmentRequest{
			Slot:           slot,
			ProductNumbers: []string{"1", "2"},
			CustomerEmail:  testEmail,
		})
		require.NoError(t, err)
		assertPair(t, urls, "cid=MktEmail&etype=PartialShipment&plid=Horizontal&pos=0&ccp=eyJwcm9kdWN0TnVtYmVycyI6IjEsMiIsImN1c3RvbWVyRW1haWxIYXNoIjoiNDIifQ")
	})

	t.Run("invalid position", func(t *testing.T) {
		s := slot
		s.Position = -3
		_, err := g.ShipmentSingleRecoURLs(ShipmentRequest{Slot: s})
		assertInvalid(t, err, MsgInvalidPosition)
	})
}

func prePickupRequest() PrePickupRequest {
	slot := testSlot()
	slot.ChannelID = domain.ChannelTransEmail
	slot.EmailType = domain.EmailBopusOrderReadyForPickupSingleStore
	return PrePickupRequest{
		Slot:           slot,
		ProductNumbers: []string{"123", "456"},
		StoreNumbers:   []string{"873"},
		CustomerEmail:  testEmail,
		OrderNumber:    "ORD1",
	}
}

func TestPrePickupBopus(t *testing.T) {
	g := newTestGenerator(t, WithEmailHasher(fixedHasher("42")))

	urls, err := g.PrePickupBopusSingleRecoURLs(prePickupRequest())
	require.NoError(t, err)
	assertPair(t, urls, "cid=TransEmail&etype=Bopus1StoreOrderReadyForPickup&plid=Horizontal&pos=0&ccp=eyJwcm9kdWN0TnVtYmVycyI6IjEyMyw0NTYiLCJzaGlwTm9kZXMiOiI4NzMiLCJjdXN0b21lckVtYWlsSGFzaCI6IjQyIiwib3JkZXJOdW1iZXIiOiJPUkQxIn0")
}

func TestPrePickupBopusRoundTrip(t *testing.T) {
	g := newTestGenerator(t)
	req := prePickupRequest()
	req.AtgID = "2254000009113198"

	urls, err := g.PrePickupBopusSingleRecoURLs(req)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"productNumbers":    "123,456",
		"shipNodes":         "873",
		"customerEmailHash": HashCustomerEmail(testEmail),
		"orderNumber":       "ORD1",
		"atgId":             "2254000009113198",
	}, ccpOf(t, urls[0].URL))
}

func TestPrePickupBopusValidationOrder(t *testing.T) {
	g := newTestGenerator(t)

	tests := []struct {
		name string
		mut  func(*PrePickupRequest)
		want string
	}{
		{"slot before lists", func(r *PrePickupRequest) { r.PlacementID = ""; r.ProductNumbers = nil }, MsgInvalidPlacementID},
		{"products before everything else", func(r *PrePickupRequest) {
			r.ProductNumbers = []string{}
			r.StoreNumbers = nil
			r.CustomerEmail = ""
		}, MsgInvalidProductNumbers},
		{"stores before email", func(r *PrePickupRequest) { r.StoreNumbers = nil; r.CustomerEmail = "" }, MsgInvalidStoreNumbers},
		{"email", func(r *PrePickupRequest) { r.CustomerEmail = "" }, MsgInvalidCustomerEmail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := prePickupRequest()
			tt.mut(&req)
			urls, err := g.PrePickupBopusSingleRecoURLs(req)
			assert.Nil(t, urls)
			assertInvalid(t, err, tt.want)
		})
	}
}

func TestPostPickupBopus(t *testing.T) {
	g := newTestGenerator(t, WithEmailHasher(fixedHasher("42")))
	slot := testSlot()
	slot.EmailType = domain.EmailBopusPickedUpConfirmationSingleStore

	urls, err := g.PostPickupBopusSingleRecoURLs(PostPickupRequest{Slot: slot, CustomerEmail: testEmail, AtgID: "A1"})
	require.NoError(t, err)
	assertPair(t, urls, "cid=MktEmail&etype=Bopus1StorePickedUpConfirmation&plid=Horizontal&pos=0&ccp=eyJjdXN0b21lckVtYWlsSGFzaCI6IjQyIiwiYXRnSWQiOiJBMSJ9")

	_, err = g.PostPickupBopusSingleRecoURLs(PostPickupRequest{Slot: slot})
	assertInvalid(t, err, MsgInvalidCustomerEmail)

	slot.ChannelID = ""
	_, err = g.PostPickupBopusSingleRecoURLs(PostPickupRequest{Slot: slot})
	assertInvalid(t, err, MsgInvalidChannelID)
}

func TestGenerationIsIdempotent(t *testing.T) {
	g := newTestGenerator(t)
	req := KohlsCashRequest{
		Slot:          testSlot(),
		Amount:        Float(25.5),
		UpperLimit:    Float(50.75),
		CustomerEmail: testEmail,
	}

	first, err := g.KohlsCashSingleRecoURLs(req)
	require.NoError(t, err)
	second, err := g.KohlsCashSingleRecoURLs(req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGeneratorConcurrentUse(t *testing.T) {
	g := newTestGenerator(t)
	want, err := g.PostPickupBopusSingleRecoURLs(PostPickupRequest{Slot: testSlot(), CustomerEmail: testEmail})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]domain.URLResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = g.PostPickupBopusSingleRecoURLs(PostPickupRequest{Slot: testSlot(), CustomerEmail: testEmail})
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

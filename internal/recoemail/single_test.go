package recoemail

import (
	"testing"

	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "https://api-atg.kohls.com/v1/ede/email/recommendations/"

func testSlot() Slot {
	return Slot{
		ChannelID:   domain.ChannelMktEmail,
		EmailType:   domain.EmailKohlsCashGeneric,
		PlacementID: domain.PlacementHorizontal,
		Position:    0,
	}
}

func TestNewSingleRecoGeneratorRejectsEmptyBaseURL(t *testing.T) {
	g, err := NewSingleRecoGenerator("")
	assert.Nil(t, g)
	ipe, ok := IsInvalidParameter(err)
	require.True(t, ok)
	assert.Equal(t, MsgInvalidBaseURL, ipe.Message)
}

func TestSingleRecoURLsWithoutContext(t *testing.T) {
	g, err := NewSingleRecoGenerator(testBaseURL)
	require.NoError(t, err)

	img := g.ImageURL(testSlot(), nil)
	prd := g.ProductURL(testSlot(), &ContextMap{})

	assert.Equal(t, domain.URLKindImage, img.Kind)
	assert.Equal(t, testBaseURL+"imgreq/single?cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=0", img.URL)
	assert.Equal(t, domain.URLKindProduct, prd.Kind)
	assert.Equal(t, testBaseURL+"prdreq/single?cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=0", prd.URL)
}

func TestSingleRecoURLsWithContext(t *testing.T) {
	g, err := NewSingleRecoGenerator(testBaseURL)
	require.NoError(t, err)

	ccp := &ContextMap{}
	ccp.Set(domain.CCPKohlsCashAmount, "100.0")
	slot := testSlot()
	slot.Position = 3

	pair := g.Pair(slot, ccp)
	require.Len(t, pair, 2)
	assert.Equal(t, testBaseURL+"imgreq/single?cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=3&ccp=eyJrb2hsc0Nhc2hBbW91bnQiOiIxMDAuMCJ9", pair[0].URL)
	assert.Equal(t, testBaseURL+"prdreq/single?cid=MktEmail&etype=KohlsCashGeneric&plid=Horizontal&pos=3&ccp=eyJrb2hsc0Nhc2hBbW91bnQiOiIxMDAuMCJ9", pair[1].URL)
}

func TestWithQuery(t *testing.T) {
	assert.Equal(t, "https://h/x", withQuery("https://h/x", ""))
	assert.Equal(t, "https://h/x?a=1", withQuery("https://h/x", "a=1"))
}

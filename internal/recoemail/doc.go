// Package recoemail builds the single-recommendation URLs that marketing and
// transactional emails embed to fetch a recommended product's image and to
// redirect to its product page.
//
// A Generator is created once per recommendation host and is safe for
// concurrent use. Each scenario method validates its required inputs,
// assembles the channel context parameters (ccp) for the scenario, and
// returns an image request URL and a product request URL:
//
//	gen, err := recoemail.New("https", "api-atg.kohls.com", 0)
//	urls, err := gen.KohlsCashSingleRecoURLs(recoemail.KohlsCashRequest{
//		Slot: recoemail.Slot{
//			ChannelID:   domain.ChannelMktEmail,
//			EmailType:   domain.EmailKohlsCashGeneric,
//			PlacementID: domain.PlacementHorizontal,
//			Position:    0,
//		},
//		Amount: recoemail.Float(100),
//	})
//
// The package makes no network calls and keeps no state between calls.
package recoemail

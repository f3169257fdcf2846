// Command recourl prints recommendation image and product URLs for one email
// slot, optionally with the HTML snippet that embeds them.
//
//	recourl kohls-cash --channel MktEmail --email-type KohlsCashGeneric --amount 25.5
//	recourl pre-pickup --email-type Bopus1StoreOrderReadyForPickup \
//	    --products 123,456 --stores 873 --email jo@example.com --snippet
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

package recoemail

import (
	"strings"

	"github.com/ignite/recommendations-email-client/internal/domain"
)

const (
	lowestTCPPort  = 0
	highestTCPPort = 65535
)

// ValidProtocol reports whether protocol is http or https, ignoring case.
func ValidProtocol(protocol string) bool {
	return strings.EqualFold(protocol, "http") || strings.EqualFold(protocol, "https")
}

// ValidHostname reports whether hostname is non-empty.
func ValidHostname(hostname string) bool { return hostname != "" }

// ValidPort reports whether port is within the TCP range. 0 is allowed and
// means the port is left out of the URL.
func ValidPort(port int) bool { return port >= lowestTCPPort && port <= highestTCPPort }

// ValidPosition reports whether position is a usable slot index.
func ValidPosition(position int) bool { return position >= 0 }

func ValidChannelID(id domain.ChannelID) bool          { return id.Valid() }
func ValidEmailType(t domain.EmailType) bool           { return t.Valid() }
func ValidPlacementID(id domain.PlacementID) bool      { return id.Valid() }
func ValidBaseURL(baseURL string) bool                 { return baseURL != "" }
func ValidProductNumbers(productNumbers []string) bool { return len(productNumbers) > 0 }
func ValidStoreNumbers(storeNumbers []string) bool     { return len(storeNumbers) > 0 }
func ValidCustomerEmail(email string) bool             { return email != "" }

// validateSlot checks the inputs every scenario requires, in wire order.
func validateSlot(s Slot) error {
	if !ValidChannelID(s.ChannelID) {
		return newInvalidParameter(MsgInvalidChannelID)
	}
	if !ValidEmailType(s.EmailType) {
		return newInvalidParameter(MsgInvalidEmailType)
	}
	if !ValidPlacementID(s.PlacementID) {
		return newInvalidParameter(MsgInvalidPlacementID)
	}
	if !ValidPosition(s.Position) {
		return newInvalidParameter(MsgInvalidPosition)
	}
	return nil
}

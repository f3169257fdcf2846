package api

import (
	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/ignite/recommendations-email-client/internal/recoemail"
)

// slotBody holds the fields every generation request carries. A missing
// position is null and fails validation like a negative one.
type slotBody struct {
	ChannelID   domain.ChannelID   `json:"channel_id"`
	EmailType   domain.EmailType   `json:"email_type"`
	PlacementID domain.PlacementID `json:"placement_id"`
	Position    *int               `json:"position"`
	Alt         string             `json:"alt,omitempty"`
}

func (b slotBody) position() int {
	if b.Position == nil {
		return -1
	}
	return *b.Position
}

func (b slotBody) slot() recoemail.Slot {
	return recoemail.Slot{
		ChannelID:   b.ChannelID,
		EmailType:   b.EmailType,
		PlacementID: b.PlacementID,
		Position:    b.position(),
	}
}

type kohlsCashBody struct {
	slotBody
	Amount        *float64 `json:"amount"`
	LowerLimit    *float64 `json:"lower_limit"`
	UpperLimit    *float64 `json:"upper_limit"`
	CustomerEmail string   `json:"customer_email"`
}

func (b kohlsCashBody) request() recoemail.KohlsCashRequest {
	return recoemail.KohlsCashRequest{
		Slot:          b.slot(),
		Amount:        b.Amount,
		LowerLimit:    b.LowerLimit,
		UpperLimit:    b.UpperLimit,
		CustomerEmail: b.CustomerEmail,
	}
}

type shipmentBody struct {
	slotBody
	ProductNumbers []string `json:"product_numbers"`
	CustomerEmail  string   `json:"customer_email"`
}

func (b shipmentBody) request() recoemail.ShipmentRequest {
	return recoemail.ShipmentRequest{
		Slot:           b.slot(),
		ProductNumbers: b.ProductNumbers,
		CustomerEmail:  b.CustomerEmail,
	}
}

type prePickupBody struct {
	slotBody
	ProductNumbers []string `json:"product_numbers"`
	StoreNumbers   []string `json:"store_numbers"`
	CustomerEmail  string   `json:"customer_email"`
	OrderNumber    string   `json:"order_number"`
	AtgID          string   `json:"atg_id"`
}

func (b prePickupBody) request() recoemail.PrePickupRequest {
	return recoemail.PrePickupRequest{
		Slot:           b.slot(),
		ProductNumbers: b.ProductNumbers,
		StoreNumbers:   b.StoreNumbers,
		CustomerEmail:  b.CustomerEmail,
		OrderNumber:    b.OrderNumber,
		AtgID:          b.AtgID,
	}
}

type postPickupBody struct {
	slotBody
	CustomerEmail string `json:"customer_email"`
	AtgID         string `json:"atg_id"`
}

func (b postPickupBody) request() recoemail.PostPickupRequest {
	return recoemail.PostPickupRequest{
		Slot:          b.slot(),
		CustomerEmail: b.CustomerEmail,
		AtgID:         b.AtgID,
	}
}

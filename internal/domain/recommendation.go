package domain

import (
	"fmt"
	"slices"
	"strings"
)

// ChannelID identifies the email channel a recommendation is requested for.
// The constant value is the wire name sent in the cid query parameter.
type ChannelID string

const (
	ChannelMktEmail   ChannelID = "MktEmail"
	ChannelTransEmail ChannelID = "TransEmail"
	ChannelDemoEmail  ChannelID = "DemoEmail"
)

var channelIDs = map[string]ChannelID{
	"MKT_EMAIL":   ChannelMktEmail,
	"TRANS_EMAIL": ChannelTransEmail,
	"DEMO_EMAIL":  ChannelDemoEmail,
}

// Valid reports whether c is one of the known channels.
func (c ChannelID) Valid() bool { return validMember(channelIDs, c) }

func (c ChannelID) String() string { return string(c) }

// MarshalText implements encoding.TextMarshaler.
func (c ChannelID) MarshalText() ([]byte, error) { return []byte(c), nil }

// UnmarshalText accepts the wire name ("MktEmail") or the constant name ("MKT_EMAIL").
func (c *ChannelID) UnmarshalText(b []byte) error {
	v, err := parseMember(channelIDs, "channel id", string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// PlacementID identifies where in the email the recommendation slot sits.
type PlacementID string

const (
	PlacementHorizontal PlacementID = "Horizontal"
)

var placementIDs = map[string]PlacementID{
	"HORIZONTAL": PlacementHorizontal,
}

// Valid reports whether p is one of the known placements.
func (p PlacementID) Valid() bool { return validMember(placementIDs, p) }

func (p PlacementID) String() string { return string(p) }

// MarshalText implements encoding.TextMarshaler.
func (p PlacementID) MarshalText() ([]byte, error) { return []byte(p), nil }

// UnmarshalText accepts the wire name or the constant name.
func (p *PlacementID) UnmarshalText(b []byte) error {
	v, err := parseMember(placementIDs, "placement id", string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// EmailType identifies the kind of email the slot is rendered into.
type EmailType string

const (
	EmailKohlsCashGeneric EmailType = "KohlsCashGeneric"
	EmailPartialShipment  EmailType = "PartialShipment"
	EmailCompleteShipment EmailType = "CompleteShipment"

	EmailBopusOrderDelaySingleStore                       EmailType = "Bopus1StoreOrderDelay"
	EmailBopusOrderDelayMultiStore                        EmailType = "BopusMStoreOrderDelay"
	EmailBopusOrderReadyForPickupSingleStore              EmailType = "Bopus1StoreOrderReadyForPickup"
	EmailBopusOrderReadyForPickupWithGiftSingleStore      EmailType = "Bopus1StoreOrderReadyForPickupWithGift"
	EmailBopusOrderReadyForPickupMultiStore               EmailType = "BopusMStoreOrderReadyForPickup"
	EmailBopusOrderReadyForPickupReminderSingleStore      EmailType = "Bopus1StoreOrderReadyForPickupReminder"
	EmailBopusOrderReadyForPickupReminderMultiStore       EmailType = "BopusMStoreOrderReadyForPickupReminder"
	EmailBopusFinalOrderReadyForPickupReminderSingleStore EmailType = "Bopus1StoreFinalOrderReadyForPickupReminder"
	EmailBopusFinalOrderReadyForPickupReminderMultiStore  EmailType = "BopusMStoreFinalOrderReadyForPickupReminder"
	EmailBopusPickedUpConfirmationSingleStore             EmailType = "Bopus1StorePickedUpConfirmation"
	EmailBopusPickedUpConfirmationMultiStore              EmailType = "BopusMStorePickedUpConfirmation"
	EmailBopusAutoRefundSingleStore                       EmailType = "Bopus1StoreAutoRefund"
	EmailBopusAutoRefundMultiStore                        EmailType = "BopusMStoreAutoRefund"
	EmailBopusOrderModificationSingleStore                EmailType = "Bopus1StoreOrderModification"
	EmailBopusOrderModificationMultiStore                 EmailType = "BopusMStoreOrderModification"
	EmailBopusOrderCancellation                           EmailType = "BopusOrderCancellation"
	EmailBopusPickupPersonChanged                         EmailType = "BopusPickupPersonChanged"
	EmailBopusPickupPersonFinalPickupReminder             EmailType = "BopusPickupPersonFinalPickupReminder"
	EmailBopusPickupPersonOrderReadyForPickup             EmailType = "BopusPickupPersonOrderReadyForPickup"
	EmailBopusPickupPersonPickedUpConfirmation            EmailType = "BopusPickupPersonPickedUpConfirmation"
	EmailBopusPickupPersonPickupExpired                   EmailType = "BopusPickupPersonPickupExpired"
	EmailBopusPickupPersonPickupReminder                  EmailType = "BopusPickupPersonPickupReminder"
)

var emailTypes = map[string]EmailType{
	"KOHLS_CASH_GENERIC": EmailKohlsCashGeneric,
	"PARTIAL_SHIPMENT":   EmailPartialShipment,
	"COMPLETE_SHIPMENT":  EmailCompleteShipment,

	"BOPUS_ORDER_DELAY_SINGLE_STORE":                           EmailBopusOrderDelaySingleStore,
	"BOPUS_ORDER_DELAY_MULTI_STORE":                            EmailBopusOrderDelayMultiStore,
	"BOPUS_ORDER_READY_FOR_PICKUP_SINGLE_STORE":                EmailBopusOrderReadyForPickupSingleStore,
	"BOPUS_ORDER_READY_FOR_PICKUP_WITH_GIFT_SINGLE_STORE":      EmailBopusOrderReadyForPickupWithGiftSingleStore,
	"BOPUS_ORDER_READY_FOR_PICKUP_MULTI_STORE":                 EmailBopusOrderReadyForPickupMultiStore,
	"BOPUS_ORDER_READY_FOR_PICKUP_REMINDER_SINGLE_STORE":       EmailBopusOrderReadyForPickupReminderSingleStore,
	"BOPUS_ORDER_READY_FOR_PICKUP_REMINDER_MULTI_STORE":        EmailBopusOrderReadyForPickupReminderMultiStore,
	"BOPUS_FINAL_ORDER_READY_FOR_PICKUP_REMINDER_SINGLE_STORE": EmailBopusFinalOrderReadyForPickupReminderSingleStore,
	"BOPUS_FINAL_ORDER_READY_FOR_PICKUP_REMINDER_MULTI_STORE":  EmailBopusFinalOrderReadyForPickupReminderMultiStore,
	"BOPUS_PICKED_UP_CONFIRMATION_SINGLE_STORE":                EmailBopusPickedUpConfirmationSingleStore,
	"BOPUS_PICKED_UP_CONFIRMATION_MULTI_STORE":                 EmailBopusPickedUpConfirmationMultiStore,
	"BOPUS_AUTO_REFUND_SINGLE_STORE":                           EmailBopusAutoRefundSingleStore,
	"BOPUS_AUTO_REFUND_MULTIPLE_STORE":                         EmailBopusAutoRefundMultiStore,
	"BOPUS_ORDER_MODIFICATION_SINGLE_STORE":                    EmailBopusOrderModificationSingleStore,
	"BOPUS_ORDER_MODIFICATION_MULTI_STORE":                     EmailBopusOrderModificationMultiStore,
	"BOPUS_ORDER_CANCELLATION":                                 EmailBopusOrderCancellation,
	"BOPUS_PICKUP_PERSON_CHANGED":                              EmailBopusPickupPersonChanged,
	"BOPUS_PICKUP_PERSON_FINAL_PICKUP_REMINDER":                EmailBopusPickupPersonFinalPickupReminder,
	"BOPUS_PICKUP_PERSON_ORDER_READY_FOR_PICKUP":               EmailBopusPickupPersonOrderReadyForPickup,
	"BOPUS_PICKUP_PERSON_PICKEDUP_CONFIRMATION":                EmailBopusPickupPersonPickedUpConfirmation,
	"BOPUS_PICKUP_PERSON_PICKUP_EXPIRED":                       EmailBopusPickupPersonPickupExpired,
	"BOPUS_PICKUP_PERSON_PICKUP_REMINDER":                      EmailBopusPickupPersonPickupReminder,
}

// Valid reports whether e is one of the known email types.
func (e EmailType) Valid() bool { return validMember(emailTypes, e) }

func (e EmailType) String() string { return string(e) }

// MarshalText implements encoding.TextMarshaler.
func (e EmailType) MarshalText() ([]byte, error) { return []byte(e), nil }

// UnmarshalText accepts the wire name or the constant name.
func (e *EmailType) UnmarshalText(b []byte) error {
	v, err := parseMember(emailTypes, "email type", string(b))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ContextParamName is the JSON key of a channel context parameter (ccp).
type ContextParamName string

const (
	CCPKohlsCashAmount     ContextParamName = "kohlsCashAmount"
	CCPKohlsCashLowerLimit ContextParamName = "kohlsCashLowerLimit"
	CCPKohlsCashUpperLimit ContextParamName = "kohlsCashUpperLimit"
	CCPCustomerEmailHash   ContextParamName = "customerEmailHash"
	CCPProductNumbers      ContextParamName = "productNumbers"
	CCPStoreNumbers        ContextParamName = "shipNodes"
	CCPOrderNumber         ContextParamName = "orderNumber"
	CCPAtgID               ContextParamName = "atgId"
)

func (n ContextParamName) String() string { return string(n) }

// QueryParamName is a top-level query parameter key of a recommendation URL.
type QueryParamName string

const (
	QueryChannelID   QueryParamName = "cid"
	QueryEmailType   QueryParamName = "etype"
	QueryPlacementID QueryParamName = "plid"
	QueryPosition    QueryParamName = "pos"
	QueryCCP         QueryParamName = "ccp"
)

func (n QueryParamName) String() string { return string(n) }

// ChannelIDs returns every known channel in a stable order.
func ChannelIDs() []ChannelID {
	return []ChannelID{ChannelMktEmail, ChannelTransEmail, ChannelDemoEmail}
}

// PlacementIDs returns every known placement.
func PlacementIDs() []PlacementID {
	return []PlacementID{PlacementHorizontal}
}

// EmailTypes returns every known email type sorted by wire name.
func EmailTypes() []EmailType {
	out := make([]EmailType, 0, len(emailTypes))
	for _, e := range emailTypes {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

func validMember[T ~string](table map[string]T, v T) bool {
	if v == "" {
		return false
	}
	for _, m := range table {
		if m == v {
			return true
		}
	}
	return false
}

func parseMember[T ~string](table map[string]T, what, s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if s == "" {
		return zero, nil
	}
	if v, ok := table[strings.ToUpper(s)]; ok {
		return v, nil
	}
	for _, m := range table {
		if string(m) == s {
			return m, nil
		}
	}
	return zero, fmt.Errorf("unknown %s %q", what, s)
}

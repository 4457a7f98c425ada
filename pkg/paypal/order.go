package paypal

import (
	"encoding/json"
	"strings"
)

// Order is the subset of a PayPal order used for license activation.
type Order struct {
	ID            *string         `json:"id,omitempty"`
	CreateTime    *string         `json:"create_time,omitempty"`
	Payer         *Payer          `json:"payer,omitempty"`
	PurchaseUnits *[]PurchaseUnit `json:"purchase_units,omitempty"`
}

// Payer identifies the buyer.
type Payer struct {
	EmailAddress *string `json:"email_address,omitempty"`
	Name         *Name   `json:"name,omitempty"`
}

// Name is the buyer's name as reported by PayPal.
type Name struct {
	GivenName *string `json:"given_name,omitempty"`
	Surname   *string `json:"surname,omitempty"`
}

// PurchaseUnit groups the purchased items.
type PurchaseUnit struct {
	ReferenceID *string `json:"reference_id,omitempty"`
	Items       *[]Item `json:"items,omitempty"`
}

// Item is a single purchased line. SKU holds the encoded license token.
type Item struct {
	Name *string `json:"name,omitempty"`
	SKU  *string `json:"sku,omitempty"`
}

// Parse decodes a raw PayPal order and checks that it carries the structure
// required for translation. Optional string fields holding another JSON type
// are treated as absent. The returned error, if any, is a *ValidationError.
func Parse(payload []byte) (Order, error) {
	var order Order
	if len(strings.TrimSpace(string(payload))) == 0 {
		return Order{}, newValidationError(ErrMalformedPayload, nil)
	}
	if err := json.Unmarshal(payload, &order); err != nil {
		return Order{}, newValidationError(ErrMalformedPayload, err)
	}
	if order.PurchaseUnits == nil {
		return Order{}, newValidationError(ErrMissingPurchaseUnits, nil)
	}
	if len(*order.PurchaseUnits) == 0 {
		return Order{}, newValidationError(ErrEmptyPurchaseUnits, nil)
	}
	if (*order.PurchaseUnits)[0].Items == nil {
		return Order{}, newValidationError(ErrMissingItems, nil)
	}
	return order, nil
}

// FirstUnit returns the purchase unit licenses are taken from.
// It must only be called on an order returned by Parse.
func (o Order) FirstUnit() PurchaseUnit {
	return (*o.PurchaseUnits)[0]
}

// Items returns the items of the first purchase unit.
func (o Order) Items() []Item {
	unit := o.FirstUnit()
	if unit.Items == nil {
		return nil
	}
	return *unit.Items
}

package paypal

import (
	"bytes"
	"encoding/json"
)

// optionalString decodes a JSON string. null and values of any other JSON
// type decode as absent.
type optionalString struct {
	value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.value = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return nil
	}
	o.value = &s
	return nil
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID            optionalString  `json:"id"`
		CreateTime    optionalString  `json:"create_time"`
		Payer         *Payer          `json:"payer"`
		PurchaseUnits *[]PurchaseUnit `json:"purchase_units"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*o = Order{
		ID:            wire.ID.value,
		CreateTime:    wire.CreateTime.value,
		Payer:         wire.Payer,
		PurchaseUnits: wire.PurchaseUnits,
	}
	return nil
}

func (p *Payer) UnmarshalJSON(data []byte) error {
	var wire struct {
		EmailAddress optionalString `json:"email_address"`
		Name         *Name          `json:"name"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*p = Payer{EmailAddress: wire.EmailAddress.value, Name: wire.Name}
	return nil
}

func (n *Name) UnmarshalJSON(data []byte) error {
	var wire struct {
		GivenName optionalString `json:"given_name"`
		Surname   optionalString `json:"surname"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*n = Name{GivenName: wire.GivenName.value, Surname: wire.Surname.value}
	return nil
}

func (u *PurchaseUnit) UnmarshalJSON(data []byte) error {
	var wire struct {
		ReferenceID optionalString `json:"reference_id"`
		Items       *[]Item        `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*u = PurchaseUnit{ReferenceID: wire.ReferenceID.value, Items: wire.Items}
	return nil
}

// UnmarshalJSON decodes an item. An entry that is not an object decodes as
// an item without a sku, so translation skips it.
func (i *Item) UnmarshalJSON(data []byte) error {
	var wire struct {
		Name optionalString `json:"name"`
		SKU  optionalString `json:"sku"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		*i = Item{}
		return nil
	}
	*i = Item{Name: wire.Name.value, SKU: wire.SKU.value}
	return nil
}

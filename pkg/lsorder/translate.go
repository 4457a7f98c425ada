package lsorder

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/lsrelay/pkg/paypal"
)

const (
	// fallbackPayPalID stands in for a missing PayPal order id.
	fallbackPayPalID = "id"
	createdLayout    = "2006-01-02 15:04:05"
)

// ReferenceGenerator returns a fresh order reference for purchase units
// without a reference_id.
type ReferenceGenerator func() string

// Option configures Translate.
type Option func(*translator)

// WithReferenceGenerator replaces the random hex reference generator.
// Nil generators are ignored.
func WithReferenceGenerator(gen ReferenceGenerator) Option {
	return func(t *translator) {
		if gen != nil {
			t.newReference = gen
		}
	}
}

type translator struct {
	newReference ReferenceGenerator
}

// RandomReference returns a random 32 character hex token.
func RandomReference() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Translate converts a validated PayPal order into a LicenseSpring order.
// The order must come from paypal.Parse.
func Translate(src paypal.Order, opts ...Option) Order {
	t := &translator{newReference: RandomReference}
	for _, opt := range opts {
		opt(t)
	}

	unit := src.FirstUnit()

	var reference string
	if unit.ReferenceID != nil {
		reference = *unit.ReferenceID
	} else {
		reference = t.newReference()
	}

	return Order{
		ID:       reference + "_paypal_" + deref(src.ID, fallbackPayPalID),
		Created:  formatCreated(src.CreateTime),
		Append:   true,
		Customer: customer(src.Payer),
		Items:    groupLicenses(src.Items()),
	}
}

// groupLicenses merges single-license items into one entry per product.
func groupLicenses(items []paypal.Item) []Item {
	grouped := make([]Item, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if item.SKU == nil {
			continue
		}
		product, key, ok := DecodeSKU(*item.SKU)
		if !ok {
			continue
		}

		i, seen := index[product]
		if !seen {
			i = len(grouped)
			index[product] = i
			grouped = append(grouped, Item{ProductCode: product})
		}
		grouped[i].Licenses = append(grouped[i].Licenses, License{Key: key})
	}

	return grouped
}

func customer(payer *paypal.Payer) *Customer {
	if payer == nil {
		return nil
	}

	c := &Customer{Email: deref(payer.EmailAddress, "")}
	if payer.Name != nil {
		first := deref(payer.Name.GivenName, "")
		last := deref(payer.Name.Surname, "")
		c.FirstName = &first
		c.LastName = &last
	}
	return c
}

func formatCreated(createTime *string) string {
	if createTime == nil {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, *createTime)
	if err != nil {
		return ""
	}
	return ts.UTC().Format(createdLayout)
}

func deref(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

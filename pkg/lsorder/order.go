package lsorder

// Order is the document accepted by the LicenseSpring order webhook.
type Order struct {
	ID       string    `json:"id"`
	Created  string    `json:"created"`
	Append   bool      `json:"append"`
	Customer *Customer `json:"customer,omitempty"`
	Items    []Item    `json:"items"`
}

// Customer is set only when PayPal reported a payer.
// Name fields are set only when the payer had a name block.
type Customer struct {
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Item lists every license bought for a single product.
type Item struct {
	ProductCode string    `json:"product_code"`
	Licenses    []License `json:"licenses"`
}

// License is a single license key.
type License struct {
	Key string `json:"key"`
}

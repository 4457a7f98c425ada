// Package paypal decodes and validates completed PayPal order payloads.
//
// Only the fields needed to activate licenses are modelled. Every optional
// field is a pointer so that "absent" and "empty" stay distinguishable:
//
//	order, err := paypal.Parse(payload)
//	if err != nil {
//		var verr *paypal.ValidationError
//		if errors.As(err, &verr) {
//			// verr.Error() is safe to show to the buyer
//		}
//	}
//
// Parse checks the payload in a fixed order and stops at the first problem:
// malformed JSON, missing purchase_units, empty purchase_units and finally a
// missing items list on the first purchase unit.
package paypal

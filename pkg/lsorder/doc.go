// Package lsorder builds LicenseSpring order documents from PayPal orders.
//
// PayPal carries one license per item. Each item's sku is a base64 token of
// the form "<product_code>;<license_key>". Translate folds those items into
// one entry per product, keeping products in first-seen order and licenses
// in item order:
//
//	order, err := paypal.Parse(payload)
//	if err != nil {
//		return err
//	}
//	lsOrder := lsorder.Translate(order)
//
// Items without a usable sku are skipped silently.
package lsorder

package lsorder

import (
	"encoding/base64"
	"strings"
)

const skuSeparator = ";"

// EncodeSKU packs a product code and a license key into a PayPal sku value.
func EncodeSKU(productCode, licenseKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(productCode + skuSeparator + licenseKey))
}

// DecodeSKU unpacks a sku value. ok is false unless the decoded value
// splits into exactly a product code and a license key.
func DecodeSKU(sku string) (productCode, licenseKey string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(sku)
	if err != nil {
		// PayPal may strip padding from free-form fields
		raw, err = base64.RawStdEncoding.DecodeString(sku)
		if err != nil {
			return "", "", false
		}
	}

	parts := strings.Split(string(raw), skuSeparator)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

package order

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/baerenfell/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// DefaultCountry is the shipping country assumed when none is provided
const DefaultCountry = "Switzerland"

// Swiss VAT rate applied to the subtotal
var taxRate = decimal.NewFromFloat(0.077)

// Flat shipping rates in CHF
var (
	shippingDomestic      = decimal.NewFromFloat(7.00)
	shippingInternational = decimal.NewFromFloat(15.00)
)

// ShippingCostFor returns the flat shipping rate for a destination country.
// The match is exact: only "Switzerland" gets the domestic rate.
func ShippingCostFor(country string) valueobject.Money {
	if country == DefaultCountry {
		return valueobject.NewMoneyCHF(shippingDomestic)
	}
	return valueobject.NewMoneyCHF(shippingInternational)
}

// TaxOn returns the VAT due on a subtotal, rounded half-up to 2 decimals
func TaxOn(subtotal valueobject.Money) valueobject.Money {
	return subtotal.Multiply(taxRate).Round(2)
}

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber generates a human-readable order number in the form
// BF-<base36 millisecond timestamp>-<3 random base36 characters>
func GenerateOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("BF-%s-%s", ts, suffix)
}

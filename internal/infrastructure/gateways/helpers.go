package gateways

import "github.com/shopspring/decimal"

// toMinorUnits converts an exact decimal amount into an integer count of the
// minor currency unit (100.50 BRL -> 10050 centavos). The stored transaction
// amount is never touched; this conversion exists only for transport.
func toMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).IntPart()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package app

import (
	"crypto/rand"
	"math/big"
)

const planIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func validateQuantity(quantity int64) error {
	if quantity <= 0 {
		return invalidArgument("quantity must be greater than 0")
	}
	return nil
}

// validatePlan checks the interval before the amount.
func validatePlan(amount int64, interval Interval) error {
	if !interval.Valid() {
		return invalidArgument("interval must be one of year|month|day|week")
	}
	if amount <= 0 {
		return invalidArgument("amount must be greater than 0")
	}
	return nil
}

// randomPlanID returns PlanIDLength characters drawn uniformly from planIDAlphabet.
func randomPlanID() (string, error) {
	base := big.NewInt(int64(len(planIDAlphabet)))
	b := make([]byte, PlanIDLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", err
		}
		b[i] = planIDAlphabet[n.Int64()]
	}
	return string(b), nil
}

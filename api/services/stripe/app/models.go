package app

import "github.com/stripe/stripe-go"

// Interval is the billing period unit accepted by CreatePlan.
type Interval string

const (
	IntervalDay   Interval = "day"
	IntervalWeek  Interval = "week"
	IntervalMonth Interval = "month"
	IntervalYear  Interval = "year"
)

// Business constants
const (
	// Currency is the only currency this facade bills in.
	Currency = stripe.CurrencyUSD

	// ListLimit bounds card, invoice and plan listings.
	ListLimit = 100
	// CouponListLimit bounds FindAllCoupons.
	CouponListLimit = 10

	// PlanIDLength is the length of generated plan identifiers.
	PlanIDLength = 12

	// DefaultCustomerDescription is applied by CreateCustomer; {user_id} is
	// replaced with the caller's user id.
	DefaultCustomerDescription = "Customer {user_id}"
	userIDPlaceholder          = "{user_id}"
)

// Valid reports whether the interval is one Stripe bills on.
func (i Interval) Valid() bool {
	switch i {
	case IntervalDay, IntervalWeek, IntervalMonth, IntervalYear:
		return true
	}
	return false
}

// SubscriptionStatusResponse is what SubscriptionStatus resolves with: the
// status field and nothing else.
type SubscriptionStatusResponse struct {
	Status stripe.SubscriptionStatus `json:"status"`
}

// CardFields is the partial set of card attributes UpdateCustomerCard can
// change. Nil fields are left untouched.
type CardFields struct {
	AddressCity    *string `json:"address_city,omitempty"`
	AddressCountry *string `json:"address_country,omitempty"`
	AddressLine1   *string `json:"address_line1,omitempty"`
	AddressLine2   *string `json:"address_line2,omitempty"`
	AddressState   *string `json:"address_state,omitempty"`
	AddressZip     *string `json:"address_zip,omitempty"`
	ExpMonth       *int64  `json:"exp_month,omitempty"`
	ExpYear        *int64  `json:"exp_year,omitempty"`
	Name           *string `json:"name,omitempty"`
}

// PlanFields is the partial set of plan attributes UpdatePlan can change.
type PlanFields struct {
	Nickname        *string           `json:"nickname,omitempty"`
	Active          *bool             `json:"active,omitempty"`
	TrialPeriodDays *int64            `json:"trial_period_days,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

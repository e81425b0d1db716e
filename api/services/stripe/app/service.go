package app

import (
	"context"

	stripe "github.com/stripe/stripe-go"
	gw "github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway"
)

// Service defines the business operations for the Stripe domain. Every
// operation issues at most one remote call through the injected gateway and
// returns either the remote payload or a typed error.
type Service interface {
	FindConnectedAccount(ctx context.Context, accountID string) (stripe.Account, error)

	CreateCustomer(ctx context.Context, userID, token string) (stripe.Customer, error)
	FindCustomer(ctx context.Context, customerID string) (stripe.Customer, error)
	UpdateCustomer(ctx context.Context, customerID, token string) (stripe.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) (stripe.Customer, error)

	CreateSubscription(ctx context.Context, customerID, planID string, quantity int64, coupon string) (stripe.Subscription, error)
	FindSubscription(ctx context.Context, subscriptionID string) (stripe.Subscription, error)
	UpdateSubscription(ctx context.Context, subscriptionID string, quantity int64) (stripe.Subscription, error)
	RemoveSubscription(ctx context.Context, subscriptionID string) (stripe.Subscription, error)
	SubscriptionStatus(ctx context.Context, subscriptionID string) (SubscriptionStatusResponse, error)

	GetCustomerCards(ctx context.Context, customerID string) (gw.Page[stripe.Card], error)
	CreateCustomerCard(ctx context.Context, customerID, token string) (stripe.Card, error)
	UpdateCustomerCard(ctx context.Context, customerID, cardID string, fields CardFields) (stripe.Card, error)
	DeleteCustomerCard(ctx context.Context, cardID, customerID string) (stripe.Card, error)

	GetInvoices(ctx context.Context, customerID, startingAfter string) (gw.Page[stripe.Invoice], error)
	GetUpcomingInvoices(ctx context.Context, customerID string) (stripe.Invoice, error)

	CreatePlan(ctx context.Context, name string, amount int64, interval Interval, intervalCount int64) (stripe.Plan, error)
	DeletePlan(ctx context.Context, planID string) (stripe.Plan, error)
	ListPlans(ctx context.Context, startingAfter string) (gw.Page[stripe.Plan], error)
	GetPlan(ctx context.Context, planID string) (stripe.Plan, error)
	UpdatePlan(ctx context.Context, planID string, fields PlanFields) (stripe.Plan, error)

	FindCoupon(ctx context.Context, couponID string) (stripe.Coupon, error)
	FindAllCoupons(ctx context.Context) (gw.Page[stripe.Coupon], error)
}

// Option configures a Service at construction time.
type Option func(*serviceImpl)

// WithCustomerDescription sets the description template used by CreateCustomer.
// Every "{user_id}" in the template is replaced by the caller's user id.
func WithCustomerDescription(template string) Option {
	return func(s *serviceImpl) {
		if template != "" {
			s.customerDescription = template
		}
	}
}

// WithFixedPlan makes CreateSubscription fall back to planID whenever the
// caller does not name a plan.
func WithFixedPlan(planID string) Option {
	return func(s *serviceImpl) { s.fixedPlanID = planID }
}

// WithRestrictedUpdates disables UpdateCustomer and UpdatePlan; both then fail
// with ErrNotImplemented without contacting Stripe.
func WithRestrictedUpdates() Option {
	return func(s *serviceImpl) { s.restrictedUpdates = true }
}

// WithPlanIDGenerator replaces the random plan id source used by CreatePlan.
func WithPlanIDGenerator(gen func() (string, error)) Option {
	return func(s *serviceImpl) {
		if gen != nil {
			s.newPlanID = gen
		}
	}
}

// serviceImpl holds only immutable configuration and the injected gateway,
// so one value is safe for concurrent use.
type serviceImpl struct {
	gw                  gw.StripeGateway
	customerDescription string
	fixedPlanID         string
	restrictedUpdates   bool
	newPlanID           func() (string, error)
}

func NewService(g gw.StripeGateway, opts ...Option) Service {
	s := &serviceImpl{
		gw:                  g,
		customerDescription: DefaultCustomerDescription,
		newPlanID:           randomPlanID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return *s
}

// FindConnectedAccount retrieves a Stripe Connect account.
func (s serviceImpl) FindConnectedAccount(ctx context.Context, accountID string) (stripe.Account, error) {
	acct, err := s.gw.GetAccount(ctx, accountID)
	if err != nil {
		return stripe.Account{}, remote(err)
	}
	return acct, nil
}

// FindCoupon retrieves a single coupon.
func (s serviceImpl) FindCoupon(ctx context.Context, couponID string) (stripe.Coupon, error) {
	cp, err := s.gw.GetCoupon(ctx, couponID)
	if err != nil {
		return stripe.Coupon{}, remote(err)
	}
	return cp, nil
}

// FindAllCoupons returns the first CouponListLimit coupons.
func (s serviceImpl) FindAllCoupons(ctx context.Context) (gw.Page[stripe.Coupon], error) {
	params := &stripe.CouponListParams{}
	params.Limit = stripe.Int64(CouponListLimit)
	page, err := s.gw.ListCoupons(ctx, params)
	if err != nil {
		return gw.Page[stripe.Coupon]{}, remote(err)
	}
	return page, nil
}

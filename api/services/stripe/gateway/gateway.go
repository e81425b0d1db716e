package gateway

//go:generate mockgen -destination=mock/mock_gateway.go -package=mock github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway StripeGateway

import (
    "context"

    stripe "github.com/stripe/stripe-go"
)

// Page is a single page of a Stripe list call. List calls never auto-paginate;
// callers continue with a starting_after cursor when HasMore is set.
type Page[T any] struct {
    Data    []T  `json:"data"`
    HasMore bool `json:"has_more"`
}

// StripeGateway abstracts the Stripe SDK operations needed by the app layer.
// Each method performs exactly one remote call and returns values, not pointers.
type StripeGateway interface {
    GetAccount(ctx context.Context, id string) (stripe.Account, error)

    CreateCustomer(ctx context.Context, params *stripe.CustomerParams) (stripe.Customer, error)
    GetCustomer(ctx context.Context, id string) (stripe.Customer, error)
    UpdateCustomer(ctx context.Context, id string, params *stripe.CustomerParams) (stripe.Customer, error)
    DeleteCustomer(ctx context.Context, id string) (stripe.Customer, error)

    ListCards(ctx context.Context, params *stripe.CardListParams) (Page[stripe.Card], error)
    CreateCard(ctx context.Context, params *stripe.CardParams) (stripe.Card, error)
    UpdateCard(ctx context.Context, id string, params *stripe.CardParams) (stripe.Card, error)
    DeleteCard(ctx context.Context, id string, params *stripe.CardParams) (stripe.Card, error)

    CreateSubscription(ctx context.Context, params *stripe.SubscriptionParams) (stripe.Subscription, error)
    GetSubscription(ctx context.Context, id string) (stripe.Subscription, error)
    UpdateSubscription(ctx context.Context, id string, params *stripe.SubscriptionParams) (stripe.Subscription, error)
    CancelSubscription(ctx context.Context, id string) (stripe.Subscription, error)

    CreatePlan(ctx context.Context, params *stripe.PlanParams) (stripe.Plan, error)
    GetPlan(ctx context.Context, id string) (stripe.Plan, error)
    UpdatePlan(ctx context.Context, id string, params *stripe.PlanParams) (stripe.Plan, error)
    DeletePlan(ctx context.Context, id string) (stripe.Plan, error)
    ListPlans(ctx context.Context, params *stripe.PlanListParams) (Page[stripe.Plan], error)

    GetCoupon(ctx context.Context, id string) (stripe.Coupon, error)
    ListCoupons(ctx context.Context, params *stripe.CouponListParams) (Page[stripe.Coupon], error)

    ListInvoices(ctx context.Context, params *stripe.InvoiceListParams) (Page[stripe.Invoice], error)
    GetUpcomingInvoice(ctx context.Context, params *stripe.InvoiceParams) (stripe.Invoice, error)
}

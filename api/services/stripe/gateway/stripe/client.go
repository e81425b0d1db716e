package stripegw

import (
    "context"
    "errors"

    stripe "github.com/stripe/stripe-go"
    "github.com/stripe/stripe-go/account"
    "github.com/stripe/stripe-go/card"
    "github.com/stripe/stripe-go/coupon"
    "github.com/stripe/stripe-go/customer"
    "github.com/stripe/stripe-go/invoice"
    "github.com/stripe/stripe-go/plan"
    "github.com/stripe/stripe-go/sub"

    gw "github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway"
)

// ErrMissingKey is returned by New when no secret key is supplied.
var ErrMissingKey = errors.New("stripe secret key is required")

// client is the Stripe SDK-backed implementation of the gateway. Every
// resource client is bound to the key given to New, so two gateways with
// different keys never share credentials through the package-level stripe.Key.
type client struct {
    accounts      *account.Client
    cards         *card.Client
    coupons       *coupon.Client
    customers     *customer.Client
    invoices      *invoice.Client
    plans         *plan.Client
    subscriptions *sub.Client
}

// New returns a StripeGateway backed by the official Stripe SDK.
func New(key string) (gw.StripeGateway, error) {
    if key == "" {
        return nil, ErrMissingKey
    }
    return NewWithBackend(key, stripe.GetBackend(stripe.APIBackend)), nil
}

// NewWithBackend binds the gateway to an explicit backend, e.g. one pointed at
// stripe-mock in tests.
func NewWithBackend(key string, b stripe.Backend) gw.StripeGateway {
    return client{
        accounts:      &account.Client{B: b, Key: key},
        cards:         &card.Client{B: b, Key: key},
        coupons:       &coupon.Client{B: b, Key: key},
        customers:     &customer.Client{B: b, Key: key},
        invoices:      &invoice.Client{B: b, Key: key},
        plans:         &plan.Client{B: b, Key: key},
        subscriptions: &sub.Client{B: b, Key: key},
    }
}

func (c client) GetAccount(ctx context.Context, id string) (stripe.Account, error) {
    params := &stripe.AccountParams{}
    params.Context = ctx
    acct, err := c.accounts.GetByID(id, params)
    if err != nil {
        return stripe.Account{}, err
    }
    if acct == nil {
        return stripe.Account{}, nil
    }
    return *acct, nil
}

func (c client) CreateCustomer(ctx context.Context, params *stripe.CustomerParams) (stripe.Customer, error) {
    if params == nil {
        params = &stripe.CustomerParams{}
    }
    params.Context = ctx
    return derefCustomer(c.customers.New(params))
}

func (c client) GetCustomer(ctx context.Context, id string) (stripe.Customer, error) {
    params := &stripe.CustomerParams{}
    params.Context = ctx
    return derefCustomer(c.customers.Get(id, params))
}

func (c client) UpdateCustomer(ctx context.Context, id string, params *stripe.CustomerParams) (stripe.Customer, error) {
    if params == nil {
        params = &stripe.CustomerParams{}
    }
    params.Context = ctx
    return derefCustomer(c.customers.Update(id, params))
}

func (c client) DeleteCustomer(ctx context.Context, id string) (stripe.Customer, error) {
    params := &stripe.CustomerParams{}
    params.Context = ctx
    return derefCustomer(c.customers.Del(id, params))
}

func derefCustomer(cust *stripe.Customer, err error) (stripe.Customer, error) {
    if err != nil {
        return stripe.Customer{}, err
    }
    if cust == nil {
        return stripe.Customer{}, nil
    }
    return *cust, nil
}

func (c client) ListCards(ctx context.Context, params *stripe.CardListParams) (gw.Page[stripe.Card], error) {
    if params == nil {
        params = &stripe.CardListParams{}
    }
    params.Context = ctx
    params.Single = true
    it := c.cards.List(params)
    page := gw.Page[stripe.Card]{}
    for it.Next() {
        if cd := it.Card(); cd != nil {
            page.Data = append(page.Data, *cd)
        }
    }
    if err := it.Err(); err != nil {
        return gw.Page[stripe.Card]{}, err
    }
    if meta := it.Meta(); meta != nil {
        page.HasMore = meta.HasMore
    }
    return page, nil
}

func (c client) CreateCard(ctx context.Context, params *stripe.CardParams) (stripe.Card, error) {
    if params == nil {
        params = &stripe.CardParams{}
    }
    params.Context = ctx
    return derefCard(c.cards.New(params))
}

func (c client) UpdateCard(ctx context.Context, id string, params *stripe.CardParams) (stripe.Card, error) {
    if params == nil {
        params = &stripe.CardParams{}
    }
    params.Context = ctx
    return derefCard(c.cards.Update(id, params))
}

func (c client) DeleteCard(ctx context.Context, id string, params *stripe.CardParams) (stripe.Card, error) {
    if params == nil {
        params = &stripe.CardParams{}
    }
    params.Context = ctx
    return derefCard(c.cards.Del(id, params))
}

func derefCard(cd *stripe.Card, err error) (stripe.Card, error) {
    if err != nil {
        return stripe.Card{}, err
    }
    if cd == nil {
        return stripe.Card{}, nil
    }
    return *cd, nil
}

func (c client) CreateSubscription(ctx context.Context, params *stripe.SubscriptionParams) (stripe.Subscription, error) {
    if params == nil {
        params = &stripe.SubscriptionParams{}
    }
    params.Context = ctx
    return derefSubscription(c.subscriptions.New(params))
}

func (c client) GetSubscription(ctx context.Context, id string) (stripe.Subscription, error) {
    params := &stripe.SubscriptionParams{}
    params.Context = ctx
    return derefSubscription(c.subscriptions.Get(id, params))
}

func (c client) UpdateSubscription(ctx context.Context, id string, params *stripe.SubscriptionParams) (stripe.Subscription, error) {
    if params == nil {
        params = &stripe.SubscriptionParams{}
    }
    params.Context = ctx
    return derefSubscription(c.subscriptions.Update(id, params))
}

func (c client) CancelSubscription(ctx context.Context, id string) (stripe.Subscription, error) {
    params := &stripe.SubscriptionCancelParams{}
    params.Context = ctx
    return derefSubscription(c.subscriptions.Cancel(id, params))
}

func derefSubscription(s *stripe.Subscription, err error) (stripe.Subscription, error) {
    if err != nil {
        return stripe.Subscription{}, err
    }
    if s == nil {
        return stripe.Subscription{}, nil
    }
    return *s, nil
}

func (c client) CreatePlan(ctx context.Context, params *stripe.PlanParams) (stripe.Plan, error) {
    if params == nil {
        params = &stripe.PlanParams{}
    }
    params.Context = ctx
    return derefPlan(c.plans.New(params))
}

func (c client) GetPlan(ctx context.Context, id string) (stripe.Plan, error) {
    params := &stripe.PlanParams{}
    params.Context = ctx
    return derefPlan(c.plans.Get(id, params))
}

func (c client) UpdatePlan(ctx context.Context, id string, params *stripe.PlanParams) (stripe.Plan, error) {
    if params == nil {
        params = &stripe.PlanParams{}
    }
    params.Context = ctx
    return derefPlan(c.plans.Update(id, params))
}

func (c client) DeletePlan(ctx context.Context, id string) (stripe.Plan, error) {
    params := &stripe.PlanParams{}
    params.Context = ctx
    return derefPlan(c.plans.Del(id, params))
}

func derefPlan(p *stripe.Plan, err error) (stripe.Plan, error) {
    if err != nil {
        return stripe.Plan{}, err
    }
    if p == nil {
        return stripe.Plan{}, nil
    }
    return *p, nil
}

func (c client) ListPlans(ctx context.Context, params *stripe.PlanListParams) (gw.Page[stripe.Plan], error) {
    if params == nil {
        params = &stripe.PlanListParams{}
    }
    params.Context = ctx
    params.Single = true
    it := c.plans.List(params)
    page := gw.Page[stripe.Plan]{}
    for it.Next() {
        if p := it.Plan(); p != nil {
            page.Data = append(page.Data, *p)
        }
    }
    if err := it.Err(); err != nil {
        return gw.Page[stripe.Plan]{}, err
    }
    if meta := it.Meta(); meta != nil {
        page.HasMore = meta.HasMore
    }
    return page, nil
}

func (c client) GetCoupon(ctx context.Context, id string) (stripe.Coupon, error) {
    params := &stripe.CouponParams{}
    params.Context = ctx
    cp, err := c.coupons.Get(id, params)
    if err != nil {
        return stripe.Coupon{}, err
    }
    if cp == nil {
        return stripe.Coupon{}, nil
    }
    return *cp, nil
}

func (c client) ListCoupons(ctx context.Context, params *stripe.CouponListParams) (gw.Page[stripe.Coupon], error) {
    if params == nil {
        params = &stripe.CouponListParams{}
    }
    params.Context = ctx
    params.Single = true
    it := c.coupons.List(params)
    page := gw.Page[stripe.Coupon]{}
    for it.Next() {
        if cp := it.Coupon(); cp != nil {
            page.Data = append(page.Data, *cp)
        }
    }
    if err := it.Err(); err != nil {
        return gw.Page[stripe.Coupon]{}, err
    }
    if meta := it.Meta(); meta != nil {
        page.HasMore = meta.HasMore
    }
    return page, nil
}

func (c client) ListInvoices(ctx context.Context, params *stripe.InvoiceListParams) (gw.Page[stripe.Invoice], error) {
    if params == nil {
        params = &stripe.InvoiceListParams{}
    }
    params.Context = ctx
    params.Single = true
    it := c.invoices.List(params)
    page := gw.Page[stripe.Invoice]{}
    for it.Next() {
        if inv := it.Invoice(); inv != nil {
            page.Data = append(page.Data, *inv)
        }
    }
    if err := it.Err(); err != nil {
        return gw.Page[stripe.Invoice]{}, err
    }
    if meta := it.Meta(); meta != nil {
        page.HasMore = meta.HasMore
    }
    return page, nil
}

func (c client) GetUpcomingInvoice(ctx context.Context, params *stripe.InvoiceParams) (stripe.Invoice, error) {
    if params == nil {
        params = &stripe.InvoiceParams{}
    }
    params.Context = ctx
    inv, err := c.invoices.GetNext(params)
    if err != nil {
        return stripe.Invoice{}, err
    }
    if inv == nil {
        return stripe.Invoice{}, nil
    }
    return *inv, nil
}

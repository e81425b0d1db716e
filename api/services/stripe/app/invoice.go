package app

import (
	"context"

	stripe "github.com/stripe/stripe-go"
	gw "github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway"
)

// GetInvoices lists up to ListLimit invoices of a customer, continuing after
// startingAfter when it is non-empty.
func (s serviceImpl) GetInvoices(ctx context.Context, customerID, startingAfter string) (gw.Page[stripe.Invoice], error) {
	params := &stripe.InvoiceListParams{Customer: stripe.String(customerID)}
	params.Limit = stripe.Int64(ListLimit)
	if startingAfter != "" {
		params.StartingAfter = stripe.String(startingAfter)
	}
	page, err := s.gw.ListInvoices(ctx, params)
	if err != nil {
		return gw.Page[stripe.Invoice]{}, remote(err)
	}
	return page, nil
}

// GetUpcomingInvoices previews the customer's next invoice.
func (s serviceImpl) GetUpcomingInvoices(ctx context.Context, customerID string) (stripe.Invoice, error) {
	params := &stripe.InvoiceParams{Customer: stripe.String(customerID)}
	inv, err := s.gw.GetUpcomingInvoice(ctx, params)
	if err != nil {
		return stripe.Invoice{}, remote(err)
	}
	return inv, nil
}

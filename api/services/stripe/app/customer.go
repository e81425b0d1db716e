package app

import (
	"context"
	"strings"

	stripe "github.com/stripe/stripe-go"
)

// CreateCustomer creates a customer described from userID and attaches token
// as its payment source.
func (s serviceImpl) CreateCustomer(ctx context.Context, userID, token string) (stripe.Customer, error) {
	params := &stripe.CustomerParams{
		Description: stripe.String(s.describeCustomer(userID)),
		Source:      &stripe.SourceParams{Token: stripe.String(token)},
	}
	cust, err := s.gw.CreateCustomer(ctx, params)
	if err != nil {
		return stripe.Customer{}, remote(err)
	}
	return cust, nil
}

func (s serviceImpl) FindCustomer(ctx context.Context, customerID string) (stripe.Customer, error) {
	cust, err := s.gw.GetCustomer(ctx, customerID)
	if err != nil {
		return stripe.Customer{}, remote(err)
	}
	return cust, nil
}

// UpdateCustomer replaces the customer's default payment source with token.
func (s serviceImpl) UpdateCustomer(ctx context.Context, customerID, token string) (stripe.Customer, error) {
	if s.restrictedUpdates {
		return stripe.Customer{}, ErrNotImplemented
	}
	params := &stripe.CustomerParams{
		Source: &stripe.SourceParams{Token: stripe.String(token)},
	}
	cust, err := s.gw.UpdateCustomer(ctx, customerID, params)
	if err != nil {
		return stripe.Customer{}, remote(err)
	}
	return cust, nil
}

// DeleteCustomer deletes the customer; Stripe cancels its subscriptions.
func (s serviceImpl) DeleteCustomer(ctx context.Context, customerID string) (stripe.Customer, error) {
	confirmation, err := s.gw.DeleteCustomer(ctx, customerID)
	if err != nil {
		return stripe.Customer{}, remote(err)
	}
	return confirmation, nil
}

func (s serviceImpl) describeCustomer(userID string) string {
	return strings.ReplaceAll(s.customerDescription, userIDPlaceholder, userID)
}

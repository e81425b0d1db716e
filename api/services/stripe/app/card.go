package app

import (
	"context"
	"strconv"

	stripe "github.com/stripe/stripe-go"
	gw "github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway"
)

// GetCustomerCards lists up to ListLimit cards on file for a customer.
func (s serviceImpl) GetCustomerCards(ctx context.Context, customerID string) (gw.Page[stripe.Card], error) {
	params := &stripe.CardListParams{Customer: stripe.String(customerID)}
	params.Limit = stripe.Int64(ListLimit)
	page, err := s.gw.ListCards(ctx, params)
	if err != nil {
		return gw.Page[stripe.Card]{}, remote(err)
	}
	return page, nil
}

// CreateCustomerCard attaches the card behind token to the customer.
func (s serviceImpl) CreateCustomerCard(ctx context.Context, customerID, token string) (stripe.Card, error) {
	params := &stripe.CardParams{
		Customer: stripe.String(customerID),
		Token:    stripe.String(token),
	}
	cd, err := s.gw.CreateCard(ctx, params)
	if err != nil {
		return stripe.Card{}, remote(err)
	}
	return cd, nil
}

// UpdateCustomerCard changes the non-nil fields of a customer's card.
func (s serviceImpl) UpdateCustomerCard(ctx context.Context, customerID, cardID string, fields CardFields) (stripe.Card, error) {
	params := fields.params()
	params.Customer = stripe.String(customerID)
	cd, err := s.gw.UpdateCard(ctx, cardID, params)
	if err != nil {
		return stripe.Card{}, remote(err)
	}
	return cd, nil
}

// DeleteCustomerCard removes a card from a customer. Note the argument order:
// card first, customer second.
func (s serviceImpl) DeleteCustomerCard(ctx context.Context, cardID, customerID string) (stripe.Card, error) {
	params := &stripe.CardParams{Customer: stripe.String(customerID)}
	confirmation, err := s.gw.DeleteCard(ctx, cardID, params)
	if err != nil {
		return stripe.Card{}, remote(err)
	}
	return confirmation, nil
}

func (f CardFields) params() *stripe.CardParams {
	params := &stripe.CardParams{
		AddressCity:    f.AddressCity,
		AddressCountry: f.AddressCountry,
		AddressLine1:   f.AddressLine1,
		AddressLine2:   f.AddressLine2,
		AddressState:   f.AddressState,
		AddressZip:     f.AddressZip,
		Name:           f.Name,
	}
	// the v70 card params carry expiry as strings
	if f.ExpMonth != nil {
		params.ExpMonth = stripe.String(strconv.FormatInt(*f.ExpMonth, 10))
	}
	if f.ExpYear != nil {
		params.ExpYear = stripe.String(strconv.FormatInt(*f.ExpYear, 10))
	}
	return params
}

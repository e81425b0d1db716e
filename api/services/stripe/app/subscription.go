package app

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go"
)

// CreateSubscription subscribes customerID to planID. An empty planID falls
// back to the configured fixed plan; an empty coupon is not sent.
func (s serviceImpl) CreateSubscription(ctx context.Context, customerID, planID string, quantity int64, coupon string) (stripe.Subscription, error) {
	if err := validateQuantity(quantity); err != nil {
		return stripe.Subscription{}, err
	}
	if planID == "" {
		planID = s.fixedPlanID
	}
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Plan: stripe.String(planID), Quantity: stripe.Int64(quantity)},
		},
	}
	if coupon != "" {
		params.Coupon = stripe.String(coupon)
	}
	subscription, err := s.gw.CreateSubscription(ctx, params)
	if err != nil {
		return stripe.Subscription{}, remote(err)
	}
	return subscription, nil
}

func (s serviceImpl) FindSubscription(ctx context.Context, subscriptionID string) (stripe.Subscription, error) {
	subscription, err := s.gw.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return stripe.Subscription{}, remote(err)
	}
	return subscription, nil
}

// UpdateSubscription changes the subscription's quantity.
func (s serviceImpl) UpdateSubscription(ctx context.Context, subscriptionID string, quantity int64) (stripe.Subscription, error) {
	if err := validateQuantity(quantity); err != nil {
		return stripe.Subscription{}, err
	}
	params := &stripe.SubscriptionParams{Quantity: stripe.Int64(quantity)}
	subscription, err := s.gw.UpdateSubscription(ctx, subscriptionID, params)
	if err != nil {
		return stripe.Subscription{}, remote(err)
	}
	return subscription, nil
}

// RemoveSubscription cancels the subscription immediately.
func (s serviceImpl) RemoveSubscription(ctx context.Context, subscriptionID string) (stripe.Subscription, error) {
	confirmation, err := s.gw.CancelSubscription(ctx, subscriptionID)
	if err != nil {
		return stripe.Subscription{}, remote(err)
	}
	return confirmation, nil
}

// SubscriptionStatus returns only the status of a subscription.
func (s serviceImpl) SubscriptionStatus(ctx context.Context, subscriptionID string) (SubscriptionStatusResponse, error) {
	subscription, err := s.gw.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return SubscriptionStatusResponse{}, remote(err)
	}
	if subscription.Status == "" {
		return SubscriptionStatusResponse{}, fmt.Errorf("%w: missing status", ErrIntegrity)
	}
	return SubscriptionStatusResponse{Status: subscription.Status}, nil
}

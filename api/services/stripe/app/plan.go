package app

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go"
	gw "github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway"
)

// CreatePlan creates a USD plan billed every intervalCount intervals. The plan
// id is generated locally; name becomes both the nickname and the product name.
func (s serviceImpl) CreatePlan(ctx context.Context, name string, amount int64, interval Interval, intervalCount int64) (stripe.Plan, error) {
	if err := validatePlan(amount, interval); err != nil {
		return stripe.Plan{}, err
	}
	id, err := s.newPlanID()
	if err != nil {
		return stripe.Plan{}, fmt.Errorf("generate plan id: %w", err)
	}
	params := &stripe.PlanParams{
		ID:       stripe.String(id),
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(Currency)),
		Interval: stripe.String(string(interval)),
		Nickname: stripe.String(name),
		Product:  &stripe.PlanProductParams{Name: stripe.String(name)},
	}
	if intervalCount > 0 {
		params.IntervalCount = stripe.Int64(intervalCount)
	}
	p, err := s.gw.CreatePlan(ctx, params)
	if err != nil {
		return stripe.Plan{}, remote(err)
	}
	return p, nil
}

func (s serviceImpl) DeletePlan(ctx context.Context, planID string) (stripe.Plan, error) {
	confirmation, err := s.gw.DeletePlan(ctx, planID)
	if err != nil {
		return stripe.Plan{}, remote(err)
	}
	return confirmation, nil
}

// ListPlans lists up to ListLimit plans, continuing after startingAfter when it
// is non-empty.
func (s serviceImpl) ListPlans(ctx context.Context, startingAfter string) (gw.Page[stripe.Plan], error) {
	params := &stripe.PlanListParams{}
	params.Limit = stripe.Int64(ListLimit)
	if startingAfter != "" {
		params.StartingAfter = stripe.String(startingAfter)
	}
	page, err := s.gw.ListPlans(ctx, params)
	if err != nil {
		return gw.Page[stripe.Plan]{}, remote(err)
	}
	return page, nil
}

func (s serviceImpl) GetPlan(ctx context.Context, planID string) (stripe.Plan, error) {
	p, err := s.gw.GetPlan(ctx, planID)
	if err != nil {
		return stripe.Plan{}, remote(err)
	}
	return p, nil
}

// UpdatePlan changes the non-nil fields of a plan.
func (s serviceImpl) UpdatePlan(ctx context.Context, planID string, fields PlanFields) (stripe.Plan, error) {
	if s.restrictedUpdates {
		return stripe.Plan{}, ErrNotImplemented
	}
	params := &stripe.PlanParams{
		Nickname:        fields.Nickname,
		Active:          fields.Active,
		TrialPeriodDays: fields.TrialPeriodDays,
	}
	for k, v := range fields.Metadata {
		params.AddMetadata(k, v)
	}
	p, err := s.gw.UpdatePlan(ctx, planID, params)
	if err != nil {
		return stripe.Plan{}, remote(err)
	}
	return p, nil
}

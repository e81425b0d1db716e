package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go"

	bootstrap "github.com/tbeaudouin05/stripe-facade/api/bootstrap"
	stripeapp "github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
	gw "github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway"
	"github.com/tbeaudouin05/stripe-facade/api/services/stripe/gateway/mock"
)

func newTestServer(t *testing.T, opts ...stripeapp.Option) (*httptest.Server, *mock.MockStripeGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	g := mock.NewMockStripeGateway(ctrl)
	bootstrap.SetStripeService(stripeapp.NewService(g, opts...))
	t.Cleanup(func() { bootstrap.SetStripeService(nil) })
	ts := httptest.NewServer(NewRouter())
	t.Cleanup(ts.Close)
	return ts, g
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestCreatePlanHTTP(t *testing.T) {
	ts, g := newTestServer(t)
	g.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *stripe.PlanParams) (stripe.Plan, error) {
			return stripe.Plan{ID: stripe.StringValue(p.ID), Amount: stripe.Int64Value(p.Amount), Nickname: stripe.StringValue(p.Nickname)}, nil
		})

	resp, out := doJSON(t, http.MethodPost, ts.URL+"/v1/plans", map[string]any{
		"name": "Test Plan X", "amount": 5000, "interval": "month", "interval_count": 1,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	id, _ := out["id"].(string)
	assert.Len(t, id, stripeapp.PlanIDLength)
	assert.Equal(t, "Test Plan X", out["nickname"])
}

func TestCreatePlanHTTP_InvalidInterval(t *testing.T) {
	ts, g := newTestServer(t)
	g.EXPECT().CreatePlan(gomock.Any(), gomock.Any()).Times(0)

	resp, out := doJSON(t, http.MethodPost, ts.URL+"/v1/plans", map[string]any{
		"name": "My Awesome Test Plan", "amount": 4500, "interval": "invalid_interval_time", "interval_count": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, out["message"], "interval must be one of year|month|day|week")
}

func TestCreateSubscriptionHTTP_ZeroQuantity(t *testing.T) {
	ts, g := newTestServer(t)
	g.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Times(0)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/v1/subscriptions", map[string]any{
		"customer_id": "cus_1", "plan_id": "plan_1", "quantity": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubscriptionStatusHTTP(t *testing.T) {
	ts, g := newTestServer(t)
	g.EXPECT().GetSubscription(gomock.Any(), "sub_1").Return(stripe.Subscription{ID: "sub_1", Status: stripe.SubscriptionStatusActive}, nil)

	resp, out := doJSON(t, http.MethodGet, ts.URL+"/v1/subscriptions/sub_1/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]any{"status": "active"}, out)
}

func TestFindCustomerHTTP_RemoteNotFound(t *testing.T) {
	ts, g := newTestServer(t)
	g.EXPECT().GetCustomer(gomock.Any(), "cus_missing").Return(stripe.Customer{}, &stripe.Error{
		Type: stripe.ErrorTypeInvalidRequest, Msg: "No such customer: cus_missing", HTTPStatusCode: 404,
	})

	resp, out := doJSON(t, http.MethodGet, ts.URL+"/v1/customers/cus_missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No such customer: cus_missing", out["message"])
}

func TestListPlansHTTP_Cursor(t *testing.T) {
	ts, g := newTestServer(t)
	g.EXPECT().ListPlans(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *stripe.PlanListParams) (gw.Page[stripe.Plan], error) {
			assert.Equal(t, "plan_9", stripe.StringValue(p.StartingAfter))
			return gw.Page[stripe.Plan]{Data: []stripe.Plan{{ID: "plan_10"}}, HasMore: false}, nil
		})

	resp, out := doJSON(t, http.MethodGet, ts.URL+"/v1/plans?starting_after=plan_9", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	data, ok := out["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
	assert.Equal(t, false, out["has_more"])
}

func TestDeleteCustomerCardHTTP(t *testing.T) {
	ts, g := newTestServer(t)
	g.EXPECT().DeleteCard(gomock.Any(), "card_1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, p *stripe.CardParams) (stripe.Card, error) {
			assert.Equal(t, "cus_1", stripe.StringValue(p.Customer))
			return stripe.Card{ID: "card_1", Deleted: true}, nil
		})

	resp, out := doJSON(t, http.MethodDelete, ts.URL+"/v1/customers/cus_1/cards/card_1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["deleted"])
}

func TestUpdateCustomerHTTP_Restricted(t *testing.T) {
	ts, g := newTestServer(t, stripeapp.WithRestrictedUpdates())
	g.EXPECT().UpdateCustomer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/v1/customers/cus_1", map[string]any{"token": "tok_visa"})
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

package grpcserver

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	stripeapp "github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
)

// methodNames fixes the order methods appear in the ServiceDesc.
var methodNames = []string{
	"FindConnectedAccount",
	"CreateCustomer", "FindCustomer", "UpdateCustomer", "DeleteCustomer",
	"CreateSubscription", "FindSubscription", "UpdateSubscription", "RemoveSubscription", "SubscriptionStatus",
	"GetCustomerCards", "CreateCustomerCard", "UpdateCustomerCard", "DeleteCustomerCard",
	"GetInvoices", "GetUpcomingInvoices",
	"CreatePlan", "DeletePlan", "ListPlans", "GetPlan", "UpdatePlan",
	"FindCoupon", "FindAllCoupons",
}

var handlers = map[string]handlerFunc{
	"FindConnectedAccount": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.FindConnectedAccount(ctx, stringField(req, "id")))
	},

	"CreateCustomer": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.CreateCustomer(ctx, stringField(req, "user_id"), stringField(req, "token")))
	},
	"FindCustomer": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.FindCustomer(ctx, stringField(req, "id")))
	},
	"UpdateCustomer": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.UpdateCustomer(ctx, stringField(req, "id"), stringField(req, "token")))
	},
	"DeleteCustomer": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.DeleteCustomer(ctx, stringField(req, "id")))
	},

	"CreateSubscription": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		quantity, err := intField(req, "quantity")
		if err != nil {
			return nil, err
		}
		return respond(s.svc.CreateSubscription(ctx,
			stringField(req, "customer_id"), stringField(req, "plan_id"), quantity, stringField(req, "coupon")))
	},
	"FindSubscription": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.FindSubscription(ctx, stringField(req, "id")))
	},
	"UpdateSubscription": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		quantity, err := intField(req, "quantity")
		if err != nil {
			return nil, err
		}
		return respond(s.svc.UpdateSubscription(ctx, stringField(req, "id"), quantity))
	},
	"RemoveSubscription": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.RemoveSubscription(ctx, stringField(req, "id")))
	},
	"SubscriptionStatus": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.SubscriptionStatus(ctx, stringField(req, "id")))
	},

	"GetCustomerCards": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.GetCustomerCards(ctx, stringField(req, "customer_id")))
	},
	"CreateCustomerCard": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.CreateCustomerCard(ctx, stringField(req, "customer_id"), stringField(req, "token")))
	},
	"UpdateCustomerCard": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		fields, err := cardFields(req)
		if err != nil {
			return nil, err
		}
		return respond(s.svc.UpdateCustomerCard(ctx, stringField(req, "customer_id"), stringField(req, "card_id"), fields))
	},
	"DeleteCustomerCard": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.DeleteCustomerCard(ctx, stringField(req, "card_id"), stringField(req, "customer_id")))
	},

	"GetInvoices": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.GetInvoices(ctx, stringField(req, "customer_id"), stringField(req, "starting_after")))
	},
	"GetUpcomingInvoices": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.GetUpcomingInvoices(ctx, stringField(req, "customer_id")))
	},

	"CreatePlan": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		amount, err := intField(req, "amount")
		if err != nil {
			return nil, err
		}
		intervalCount, err := intField(req, "interval_count")
		if err != nil {
			return nil, err
		}
		return respond(s.svc.CreatePlan(ctx, stringField(req, "name"), amount,
			stripeapp.Interval(stringField(req, "interval")), intervalCount))
	},
	"DeletePlan": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.DeletePlan(ctx, stringField(req, "id")))
	},
	"ListPlans": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.ListPlans(ctx, stringField(req, "starting_after")))
	},
	"GetPlan": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.GetPlan(ctx, stringField(req, "id")))
	},
	"UpdatePlan": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		fields, err := planFields(req)
		if err != nil {
			return nil, err
		}
		return respond(s.svc.UpdatePlan(ctx, stringField(req, "id"), fields))
	},

	"FindCoupon": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.FindCoupon(ctx, stringField(req, "id")))
	},
	"FindAllCoupons": func(s *Server, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return respond(s.svc.FindAllCoupons(ctx))
	},
}

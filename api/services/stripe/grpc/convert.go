package grpcserver

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	stripe "github.com/stripe/stripe-go"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	stripeapp "github.com/tbeaudouin05/stripe-facade/api/services/stripe/app"
)

// respond converts a facade result into the wire shape.
func respond[T any](v T, err error) (*structpb.Struct, error) {
	if err != nil {
		return nil, toStatus(err)
	}
	return toStruct(v)
}

// toStruct round-trips v through JSON so Stripe's json tags define the field names.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

// toStatus maps facade errors onto gRPC codes. Remote errors keep Stripe's
// message and derive the code from Stripe's HTTP status.
func toStatus(err error) error {
	switch {
	case errors.Is(err, stripeapp.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, stripeapp.ErrNotImplemented):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, stripeapp.ErrIntegrity):
		return status.Error(codes.DataLoss, err.Error())
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		msg := se.Msg
		if msg == "" {
			msg = err.Error()
		}
		return status.Error(codeFromHTTP(se.HTTPStatusCode), msg)
	}
	if errors.Is(err, stripeapp.ErrRemote) {
		return status.Error(codes.Unknown, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

func codeFromHTTP(code int) codes.Code {
	switch code {
	case http.StatusBadRequest:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusPaymentRequired:
		return codes.FailedPrecondition
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusTooManyRequests:
		return codes.ResourceExhausted
	}
	return codes.Unknown
}

func stringField(req *structpb.Struct, key string) string {
	v, ok := req.GetFields()[key]
	if !ok {
		return ""
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return k.StringValue
	case *structpb.Value_NumberValue:
		return strconv.FormatFloat(k.NumberValue, 'f', -1, 64)
	case *structpb.Value_BoolValue:
		return strconv.FormatBool(k.BoolValue)
	}
	return ""
}

// intField reads an integer sent either as a JSON number or, from HTTP paths
// and query strings, as a decimal string. A missing field reads as 0.
func intField(req *structpb.Struct, key string) (int64, error) {
	n, _, err := optionalInt(req, key)
	return n, err
}

func optionalInt(req *structpb.Struct, key string) (int64, bool, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return 0, false, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		f := k.NumberValue
		if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, false, status.Errorf(codes.InvalidArgument, "%s must be an integer", key)
		}
		return int64(f), true, nil
	case *structpb.Value_StringValue:
		n, err := strconv.ParseInt(k.StringValue, 10, 64)
		if err != nil {
			return 0, false, status.Errorf(codes.InvalidArgument, "%s must be an integer", key)
		}
		return n, true, nil
	case *structpb.Value_NullValue:
		return 0, false, nil
	}
	return 0, false, status.Errorf(codes.InvalidArgument, "%s must be an integer", key)
}

func optionalString(req *structpb.Struct, key string) *string {
	if _, ok := req.GetFields()[key]; !ok {
		return nil
	}
	return stripe.String(stringField(req, key))
}

func optionalBool(req *structpb.Struct, key string) (*bool, error) {
	v, ok := req.GetFields()[key]
	if !ok {
		return nil, nil
	}
	switch k := v.GetKind().(type) {
	case *structpb.Value_BoolValue:
		return stripe.Bool(k.BoolValue), nil
	case *structpb.Value_StringValue:
		b, err := strconv.ParseBool(k.StringValue)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "%s must be a boolean", key)
		}
		return stripe.Bool(b), nil
	}
	return nil, status.Errorf(codes.InvalidArgument, "%s must be a boolean", key)
}

func cardFields(req *structpb.Struct) (stripeapp.CardFields, error) {
	fields := stripeapp.CardFields{
		AddressCity:    optionalString(req, "address_city"),
		AddressCountry: optionalString(req, "address_country"),
		AddressLine1:   optionalString(req, "address_line1"),
		AddressLine2:   optionalString(req, "address_line2"),
		AddressState:   optionalString(req, "address_state"),
		AddressZip:     optionalString(req, "address_zip"),
		Name:           optionalString(req, "name"),
	}
	if n, ok, err := optionalInt(req, "exp_month"); err != nil {
		return stripeapp.CardFields{}, err
	} else if ok {
		fields.ExpMonth = stripe.Int64(n)
	}
	if n, ok, err := optionalInt(req, "exp_year"); err != nil {
		return stripeapp.CardFields{}, err
	} else if ok {
		fields.ExpYear = stripe.Int64(n)
	}
	return fields, nil
}

func planFields(req *structpb.Struct) (stripeapp.PlanFields, error) {
	fields := stripeapp.PlanFields{Nickname: optionalString(req, "nickname")}
	active, err := optionalBool(req, "active")
	if err != nil {
		return stripeapp.PlanFields{}, err
	}
	fields.Active = active
	if n, ok, err := optionalInt(req, "trial_period_days"); err != nil {
		return stripeapp.PlanFields{}, err
	} else if ok {
		fields.TrialPeriodDays = stripe.Int64(n)
	}
	if md := req.GetFields()["metadata"].GetStructValue(); md != nil {
		fields.Metadata = make(map[string]string, len(md.GetFields()))
		for k := range md.GetFields() {
			fields.Metadata[k] = stringField(md, k)
		}
	}
	return fields, nil
}

// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request value populated by the
// configured binders, and returns a Response that renders itself. Wrap
// turns it into an http.HandlerFunc:
//
//	type orderRequest struct{ Payload []byte }
//
//	func (o *orderRequest) SetRawBody(b []byte) { o.Payload = b }
//
//	r.Post("/webhooks/paypal/orders", handler.Wrap(
//		func(ctx handler.Context, req orderRequest) handler.Response {
//			return handler.JSON(relay.CreateOrder(ctx, req.Payload))
//		},
//		handler.WithBinders[orderRequest](binder.RawBody()),
//		handler.WithErrorHandler[orderRequest](handler.NewErrorHandler(log)),
//	))
//
// Binding and rendering errors go to the ErrorHandler. HTTPError values
// carry their status code; everything else becomes a 500.
package handler

// Package relay activates LicenseSpring licenses for completed PayPal orders.
//
// Relay.CreateOrder is the only entry point. It validates the raw PayPal
// payload, translates it into a LicenseSpring order, signs the request and
// delivers it with retries. Whatever happens, the caller gets a Result with
// a success flag and a message that is safe to show to the buyer:
//
//	r, err := relay.New(cfg, relay.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	result := r.CreateOrder(ctx, payload)
//
// Invalid payloads never reach the network. Transport failures and remote
// rejections are retried; only the final outcome is reported. A rejection
// body of the form {"errors":[{"message":"...","value":"..."}]} becomes the
// message "<message>: <value>".
//
// Each call is independent, so CreateOrder is safe to call concurrently. The
// backoff between attempts blocks only the calling goroutine.
package relay

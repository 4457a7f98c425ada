package relay_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lsrelay/pkg/lsorder"
	"github.com/dmitrymomot/lsrelay/pkg/relay"
	"github.com/dmitrymomot/lsrelay/pkg/validator"
	"github.com/dmitrymomot/lsrelay/pkg/webhook"
)

const (
	apiKey    = "test-api-key"
	secretKey = "test-secret-key"
)

var fixedNow = time.Date(2024, time.March, 5, 9, 8, 7, 0, time.UTC)

// licenseSpring is a fake order webhook that records what it receives.
type licenseSpring struct {
	t        *testing.T
	mu       sync.Mutex
	attempts int32
	orders   []lsorder.Order
	respond  func(attempt int32, w http.ResponseWriter)
}

func (ls *licenseSpring) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	attempt := atomic.AddInt32(&ls.attempts, 1)

	assert.Equal(ls.t, relay.DefaultOrderEndpoint, r.URL.Path)
	assert.Equal(ls.t, "application/json", r.Header.Get("Content-Type"))

	date := r.Header.Get("Date")
	auth, err := webhook.ParseAuthorization(r.Header.Get("Authorization"))
	if assert.NoError(ls.t, err) {
		assert.Equal(ls.t, "hmac-sha256", auth.Algorithm)
		assert.Equal(ls.t, "date", auth.Headers)
		assert.Equal(ls.t, apiKey, auth.APIKey)
		assert.True(ls.t, webhook.VerifySignature(secretKey, date, auth.Signature))
	}

	body, err := io.ReadAll(r.Body)
	assert.NoError(ls.t, err)
	var order lsorder.Order
	assert.NoError(ls.t, json.Unmarshal(body, &order))

	ls.mu.Lock()
	ls.orders = append(ls.orders, order)
	ls.mu.Unlock()

	if ls.respond != nil {
		ls.respond(attempt, w)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func newRelay(t *testing.T, host string, opts ...relay.Option) *relay.Relay {
	t.Helper()
	cfg := relay.DefaultConfig(apiKey, secretKey)
	cfg.APIHost = host

	opts = append([]relay.Option{
		relay.WithClock(func() time.Time { return fixedNow }),
		relay.WithBackoff(webhook.FixedBackoff{Interval: time.Millisecond}),
	}, opts...)

	r, err := relay.New(cfg, opts...)
	require.NoError(t, err)
	return r
}

func payPalPayload(skus ...string) []byte {
	items := make([]map[string]string, 0, len(skus))
	for _, sku := range skus {
		items = append(items, map[string]string{"name": "License", "sku": sku})
	}
	payload, _ := json.Marshal(map[string]any{
		"id":          "5O190127TN364715T",
		"create_time": "2024-03-05T09:00:00Z",
		"payer": map[string]any{
			"email_address": "a@b.com",
			"name":          map[string]string{"given_name": "Ann", "surname": "Lee"},
		},
		"purchase_units": []map[string]any{{
			"reference_id": "default",
			"items":        items,
		}},
	})
	return payload
}

func TestCreateOrder_EndToEnd(t *testing.T) {
	t.Parallel()

	ls := &licenseSpring{t: t}
	server := httptest.NewServer(ls)
	defer server.Close()

	result := newRelay(t, server.URL).CreateOrder(context.Background(), payPalPayload(lsorder.EncodeSKU("DEMO", "ABC123")))

	assert.Equal(t, relay.Result{Success: true, Message: relay.DefaultSuccessMessage}, result)
	require.Len(t, ls.orders, 1)

	order := ls.orders[0]
	assert.Equal(t, "default_paypal_5O190127TN364715T", order.ID)
	assert.Equal(t, "2024-03-05 09:00:00", order.Created)
	assert.True(t, order.Append)
	require.NotNil(t, order.Customer)
	assert.Equal(t, "a@b.com", order.Customer.Email)
	assert.Equal(t, []lsorder.Item{
		{ProductCode: "DEMO", Licenses: []lsorder.License{{Key: "ABC123"}}},
	}, order.Items)
}

func TestCreateOrder_SignsDateHeader(t *testing.T) {
	t.Parallel()

	var gotDate, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDate = r.Header.Get("Date")
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	newRelay(t, server.URL).CreateOrder(context.Background(), payPalPayload())

	assert.Equal(t, "Tue, 5 Mar 2024 09:08:07 GMT", gotDate)
	assert.Equal(t, webhook.AuthorizationHeader(apiKey, webhook.Sign(secretKey, gotDate)), gotAuth)
}

func TestCreateOrder_ValidationFailureSkipsNetwork(t *testing.T) {
	t.Parallel()

	ls := &licenseSpring{t: t}
	server := httptest.NewServer(ls)
	defer server.Close()
	r := newRelay(t, server.URL)

	tests := []struct {
		payload string
		message string
	}{
		{`not json`, "PayPal response has invalid JSON format."},
		{`{"id":"1"}`, "PayPal response missing 'purchase_units' object."},
		{`{"purchase_units":[]}`, "PayPal response missing 'purchase_units' data."},
		{`{"purchase_units":[{}]}`, "PayPal response missing 'items' object."},
	}

	for _, tt := range tests {
		result := r.CreateOrder(context.Background(), []byte(tt.payload))
		assert.Equal(t, relay.Result{Success: false, Message: tt.message}, result)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&ls.attempts))
}

func TestCreateOrder_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	ls := &licenseSpring{t: t, respond: func(attempt int32, w http.ResponseWriter) {
		if attempt < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}}
	server := httptest.NewServer(ls)
	defer server.Close()

	result := newRelay(t, server.URL).CreateOrder(context.Background(), payPalPayload(lsorder.EncodeSKU("DEMO", "ABC123")))

	assert.True(t, result.Success)
	assert.Equal(t, int32(3), atomic.LoadInt32(&ls.attempts))

	// Retries resend the same order id
	require.Len(t, ls.orders, 3)
	assert.Equal(t, ls.orders[0].ID, ls.orders[2].ID)
}

func TestCreateOrder_RemoteRejection(t *testing.T) {
	t.Parallel()

	ls := &licenseSpring{t: t, respond: func(_ int32, w http.ResponseWriter) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Invalid","value":"X"}]}`))
	}}
	server := httptest.NewServer(ls)
	defer server.Close()

	result := newRelay(t, server.URL).CreateOrder(context.Background(), payPalPayload(lsorder.EncodeSKU("DEMO", "ABC123")))

	assert.Equal(t, relay.Result{Success: false, Message: "Invalid: X"}, result)
	assert.Equal(t, int32(10), atomic.LoadInt32(&ls.attempts))
}

func TestCreateOrder_SkipsNonStringSKU(t *testing.T) {
	t.Parallel()

	ls := &licenseSpring{t: t}
	server := httptest.NewServer(ls)
	defer server.Close()
	r := newRelay(t, server.URL, relay.WithReferenceGenerator(func() string { return "generated" }))

	payload := `{"id":12345,"purchase_units":[{"items":[{"sku":"` + lsorder.EncodeSKU("DEMO", "ABC123") + `"},{"sku":12345}]}]}`
	result := r.CreateOrder(context.Background(), []byte(payload))

	assert.True(t, result.Success)
	require.Len(t, ls.orders, 1)
	assert.Equal(t, "generated_paypal_id", ls.orders[0].ID)
	assert.Equal(t, []lsorder.Item{
		{ProductCode: "DEMO", Licenses: []lsorder.License{{Key: "ABC123"}}},
	}, ls.orders[0].Items)
}

type failingTransport struct {
	attempts int32
}

func (f *failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	atomic.AddInt32(&f.attempts, 1)
	return nil, errors.New("no route to host")
}

func TestCreateOrder_TransportFailure(t *testing.T) {
	t.Parallel()

	transport := &failingTransport{}
	r := newRelay(t, "https://api.licensespring.test", relay.WithHTTPClient(&http.Client{Transport: transport}))

	result := r.CreateOrder(context.Background(), payPalPayload(lsorder.EncodeSKU("DEMO", "ABC123")))

	assert.Equal(t, relay.Result{Success: false, Message: relay.DefaultFailureMessage}, result)
	assert.Equal(t, int32(10), atomic.LoadInt32(&transport.attempts))
}

func TestCreateOrder_FallbackReference(t *testing.T) {
	t.Parallel()

	ls := &licenseSpring{t: t}
	server := httptest.NewServer(ls)
	defer server.Close()

	r := newRelay(t, server.URL, relay.WithReferenceGenerator(func() string { return "generated" }))
	result := r.CreateOrder(context.Background(), []byte(`{"purchase_units":[{"items":[]}]}`))

	assert.True(t, result.Success)
	require.Len(t, ls.orders, 1)
	assert.Equal(t, "generated_paypal_id", ls.orders[0].ID)
	assert.Nil(t, ls.orders[0].Customer)
	assert.Empty(t, ls.orders[0].Items)
}

func TestCreateOrder_Concurrent(t *testing.T) {
	t.Parallel()

	ls := &licenseSpring{t: t}
	server := httptest.NewServer(ls)
	defer server.Close()
	r := newRelay(t, server.URL)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := r.CreateOrder(context.Background(), payPalPayload(lsorder.EncodeSKU("DEMO", "ABC123")))
			assert.True(t, result.Success)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(20), atomic.LoadInt32(&ls.attempts))
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := relay.DefaultConfig("", "")
	cfg.APIHost = "api.licensespring.com"
	cfg.OrderEndpoint = "api/v3/webhook/order"
	cfg.MaxAttempts = 0

	_, err := relay.New(cfg)
	require.ErrorIs(t, err, relay.ErrInvalidConfig)

	errs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"api_key", "secret_key", "api_host", "order_endpoint", "max_attempts"}, errs.Fields())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := relay.DefaultConfig(apiKey, secretKey)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "https://api.licensespring.com", cfg.APIHost)
	assert.Equal(t, "/api/v3/webhook/order", cfg.OrderEndpoint)
	assert.Equal(t, 10, cfg.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.BackoffStep)
}

package paypal_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lsrelay/pkg/paypal"
)

func TestParse_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		wantErr error
	}{
		{"empty body", ``, paypal.ErrMalformedPayload},
		{"invalid json", `{"purchase_units":`, paypal.ErrMalformedPayload},
		{"wrong top level type", `[1,2,3]`, paypal.ErrMalformedPayload},
		{"purchase units not an array", `{"purchase_units":{"items":[]}}`, paypal.ErrMalformedPayload},
		{"missing purchase units", `{"id":"5O190127TN364715T"}`, paypal.ErrMissingPurchaseUnits},
		{"null purchase units", `{"purchase_units":null}`, paypal.ErrMissingPurchaseUnits},
		{"empty purchase units", `{"purchase_units":[]}`, paypal.ErrEmptyPurchaseUnits},
		{"missing items", `{"purchase_units":[{"reference_id":"default"}]}`, paypal.ErrMissingItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := paypal.Parse([]byte(tt.payload))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantErr.Error(), err.Error())

			var verr *paypal.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantErr, verr.Kind)
		})
	}
}

func TestParse_Precedence(t *testing.T) {
	t.Parallel()

	t.Run("purchase units reported before items", func(t *testing.T) {
		t.Parallel()
		_, err := paypal.Parse([]byte(`{"items":[]}`))
		assert.ErrorIs(t, err, paypal.ErrMissingPurchaseUnits)
		assert.NotErrorIs(t, err, paypal.ErrMissingItems)
	})

	t.Run("only the first unit is inspected", func(t *testing.T) {
		t.Parallel()
		_, err := paypal.Parse([]byte(`{"purchase_units":[{},{"items":[]}]}`))
		assert.ErrorIs(t, err, paypal.ErrMissingItems)
	})
}

func TestParse_MalformedKeepsCause(t *testing.T) {
	t.Parallel()

	_, err := paypal.Parse([]byte(`{not json}`))
	var syntaxErr *json.SyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestParse_Success(t *testing.T) {
	t.Parallel()

	payload := `{
		"id": "5O190127TN364715T",
		"create_time": "2024-03-05T09:08:07Z",
		"payer": {
			"email_address": "buyer@example.com",
			"name": {"given_name": "John", "surname": "Doe"}
		},
		"purchase_units": [{
			"reference_id": "ref-1",
			"items": [{"name": "Pro", "sku": "UFJPRDtLRVk="}, {"name": "No sku"}]
		}]
	}`

	order, err := paypal.Parse([]byte(payload))
	require.NoError(t, err)

	require.NotNil(t, order.ID)
	assert.Equal(t, "5O190127TN364715T", *order.ID)
	require.NotNil(t, order.Payer)
	require.NotNil(t, order.Payer.Name)
	assert.Equal(t, "Doe", *order.Payer.Name.Surname)

	unit := order.FirstUnit()
	require.NotNil(t, unit.ReferenceID)
	assert.Equal(t, "ref-1", *unit.ReferenceID)

	items := order.Items()
	require.Len(t, items, 2)
	require.NotNil(t, items[0].SKU)
	assert.Nil(t, items[1].SKU)
}

func TestParse_EmptyItemsIsValid(t *testing.T) {
	t.Parallel()

	order, err := paypal.Parse([]byte(`{"purchase_units":[{"items":[]}]}`))
	require.NoError(t, err)
	assert.Empty(t, order.Items())
	assert.Nil(t, order.ID)
	assert.Nil(t, order.Payer)
}

func TestParse_OptionalFieldsOfWrongType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		check   func(t *testing.T, order paypal.Order)
	}{
		{
			name:    "numeric sku",
			payload: `{"purchase_units":[{"items":[{"sku":"REVNTztBQkMxMjM="},{"sku":12345}]}]}`,
			check: func(t *testing.T, order paypal.Order) {
				items := order.Items()
				require.Len(t, items, 2)
				require.NotNil(t, items[0].SKU)
				assert.Equal(t, "REVNTztBQkMxMjM=", *items[0].SKU)
				assert.Nil(t, items[1].SKU)
			},
		},
		{
			name:    "object sku and non-object item",
			payload: `{"purchase_units":[{"items":[{"sku":{"a":1}},"loose",7,null]}]}`,
			check: func(t *testing.T, order paypal.Order) {
				items := order.Items()
				require.Len(t, items, 4)
				for _, item := range items {
					assert.Nil(t, item.SKU)
				}
			},
		},
		{
			name:    "numeric id and reference",
			payload: `{"id":12345,"purchase_units":[{"reference_id":false,"items":[]}]}`,
			check: func(t *testing.T, order paypal.Order) {
				assert.Nil(t, order.ID)
				assert.Nil(t, order.FirstUnit().ReferenceID)
			},
		},
		{
			name:    "non-string create time",
			payload: `{"create_time":1709629687,"purchase_units":[{"items":[]}]}`,
			check: func(t *testing.T, order paypal.Order) {
				assert.Nil(t, order.CreateTime)
			},
		},
		{
			name:    "non-string payer fields",
			payload: `{"payer":{"email_address":["a"],"name":{"given_name":1,"surname":"Doe"}},"purchase_units":[{"items":[]}]}`,
			check: func(t *testing.T, order paypal.Order) {
				require.NotNil(t, order.Payer)
				assert.Nil(t, order.Payer.EmailAddress)
				require.NotNil(t, order.Payer.Name)
				assert.Nil(t, order.Payer.Name.GivenName)
				require.NotNil(t, order.Payer.Name.Surname)
				assert.Equal(t, "Doe", *order.Payer.Name.Surname)
			},
		},
		{
			name:    "null scalars",
			payload: `{"id":null,"purchase_units":[{"reference_id":null,"items":[{"sku":null}]}]}`,
			check: func(t *testing.T, order paypal.Order) {
				assert.Nil(t, order.ID)
				assert.Nil(t, order.FirstUnit().ReferenceID)
				assert.Nil(t, order.Items()[0].SKU)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			order, err := paypal.Parse([]byte(tt.payload))
			require.NoError(t, err)
			tt.check(t, order)
		})
	}
}

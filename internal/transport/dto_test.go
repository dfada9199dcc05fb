package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateProductValidate(t *testing.T) {
	cases := []struct {
		name string
		req  CreateProductRequest
		ok   bool
	}{
		{"valid", CreateProductRequest{SKU: "S1", Name: "N", Price: 0, Stock: 0}, true},
		{"negative price", CreateProductRequest{SKU: "S1", Name: "N", Price: -0.01, Stock: 0}, false},
		{"negative stock", CreateProductRequest{SKU: "S1", Name: "N", Price: 1, Stock: -1}, false},
		{"empty sku", CreateProductRequest{Name: "N", Price: 1, Stock: 1}, false},
		{"empty name", CreateProductRequest{SKU: "S1", Price: 1, Stock: 1}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				require.NotEmpty(t, ve.Issues)
			}
		})
	}
}

func TestUpdateProductValidateSubsets(t *testing.T) {
	require.NoError(t, (&UpdateProductRequest{}).Validate())

	name := "New"
	require.NoError(t, (&UpdateProductRequest{Name: &name}).Validate())

	neg := -5.0
	err := (&UpdateProductRequest{Price: &neg}).Validate()
	require.Error(t, err)

	empty := ""
	require.Error(t, (&UpdateProductRequest{SKU: &empty}).Validate())
}

func TestSlugValidation(t *testing.T) {
	valid := []string{"coffee", "coffee-gear", "a1-b2-c3", "0"}
	for _, s := range valid {
		require.NoError(t, (&CreateCategoryRequest{Name: "x", Slug: s}).Validate(), s)
	}

	invalid := []string{"", "Coffee", "coffee gear", "café", "slug!", "UPPER"}
	for _, s := range invalid {
		require.Error(t, (&CreateCategoryRequest{Name: "x", Slug: s}).Validate(), s)
	}
}

func TestRegisterValidate(t *testing.T) {
	ok := RegisterRequest{Email: "a@b.co", Password: "12345678"}
	require.NoError(t, ok.Validate())

	bad := RegisterRequest{Email: "nope", Password: "short"}
	err := bad.Validate()
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Issues, 2)
	require.Equal(t, "email", ve.Issues[0].Field)
	require.Equal(t, "password", ve.Issues[1].Field)
}

func TestCreateOrderValidate(t *testing.T) {
	// the empty-list rule lives in the service, not here
	require.NoError(t, (&CreateOrderRequest{}).Validate())

	require.NoError(t, (&CreateOrderRequest{Items: []OrderItemInput{{ProductID: 1, Quantity: 1}}}).Validate())
	require.Error(t, (&CreateOrderRequest{Items: []OrderItemInput{{ProductID: 1, Quantity: 0}}}).Validate())
	require.Error(t, (&CreateOrderRequest{Items: []OrderItemInput{{Quantity: 1}}}).Validate())
}

package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chinmayee2524/inventory-tracker/internal/model"
)

func TestCentsString(t *testing.T) {
	tests := []struct {
		name  string
		cents model.Cents
		want  string
	}{
		{name: "zero", cents: 0, want: "0.00"},
		{name: "whole amount", cents: 500, want: "5.00"},
		{name: "fractional amount", cents: 250, want: "2.50"},
		{name: "single cent", cents: 1, want: "0.01"},
		{name: "negative cent", cents: -1, want: "-0.01"},
		{name: "large amount", cents: 123456789, want: "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cents.String())
		})
	}
}

func TestCentsUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Cents
		wantErr bool
	}{
		{name: "two decimals", input: "2.50", want: 250},
		{name: "integer", input: "3", want: 300},
		{name: "zero", input: "0", want: 0},
		{name: "rounds half up", input: "0.005", want: 1},
		{name: "rounds extra digits", input: "1.999", want: 200},
		{name: "negative", input: "-0.01", want: -1},
		{name: "quoted number rejected", input: `"2.50"`, wantErr: true},
		{name: "non numeric rejected", input: `"abc"`, wantErr: true},
		{name: "overflowing amount rejected", input: "1e300", wantErr: true},
		{name: "negative overflowing amount rejected", input: "-1e300", wantErr: true},
		{name: "amount beyond int64 cents rejected", input: "92233720368547758080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c model.Cents
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestItemJSONRoundTrip(t *testing.T) {
	item := model.Item{
		ID:       1,
		Name:     "Widget",
		Quantity: 5,
		Price:    250,
		Supplier: "Acme",
	}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Widget","quantity":5,"price":2.50,"supplier":"Acme"}`, string(data))

	var decoded model.Item
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, item, decoded)
}

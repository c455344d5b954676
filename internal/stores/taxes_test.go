package stores

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaxCoercesPayload(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/services/taxes", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &gotBody))
		w.Write([]byte(`{"data":{"serviceTax":{"id":9,"name":"VAT","amount":"7.5","status":1}}}`))
	}))

	store := NewTaxStore(client)
	tax, err := store.CreateTax(context.Background(), TaxForm{
		Name:   "VAT",
		Type:   "tax",
		State:  "Lagos",
		Amount: 7.5,
		Active: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "7.5", gotBody["amount"], "amount submitted as a decimal string")
	assert.Equal(t, float64(1), gotBody["status"], "active flag submitted as 0/1")
	assert.Equal(t, "9", tax.ID.String())
	assert.Len(t, store.Items(), 1, "created tax appended to the snapshot")
}

func TestCreateTaxInactiveStatus(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.Write([]byte(`{"data":{"serviceTax":{"id":1}}}`))
	}))

	store := NewTaxStore(client)
	_, err := store.CreateTax(context.Background(), TaxForm{Name: "x", Amount: 2, Active: false})
	require.NoError(t, err)
	assert.Equal(t, float64(0), gotBody["status"])
}

func TestUpdateTaxCoercesPayload(t *testing.T) {
	var gotBody map[string]interface{}
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"data":{"serviceTaxes":[{"id":9,"name":"VAT","amount":"7.5","status":1}]}}`))
		case http.MethodPut:
			require.Equal(t, "/services/taxes/9", r.URL.Path)
			data, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(data, &gotBody))
			w.Write([]byte(`{"data":{"serviceTax":{"id":9,"name":"VAT","amount":"8.25","status":0}}}`))
		}
	}))

	store := NewTaxStore(client)
	require.NoError(t, store.FetchAll(context.Background()))

	tax, err := store.UpdateTax(context.Background(), "9", TaxForm{
		Name:   "VAT",
		Type:   "tax",
		State:  "Lagos",
		Amount: 8.25,
		Active: false,
	})
	require.NoError(t, err)

	assert.Equal(t, "8.25", gotBody["amount"], "amount submitted as a decimal string on update too")
	assert.Equal(t, float64(0), gotBody["status"], "inactive flag submitted as 0")
	assert.Equal(t, "8.25", tax.Amount)

	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "8.25", items[0].Amount, "updated tax replaces the snapshot entry")
}

func TestTaxListAlternateEnvelopeKey(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"taxes":[{"id":"1","name":"VAT"}]}}`))
	}))

	store := NewTaxStore(client)
	require.NoError(t, store.FetchAll(context.Background()))
	items := store.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "VAT", items[0].Name)
}

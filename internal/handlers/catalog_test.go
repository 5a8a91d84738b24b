package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/models"
	"github.com/sbilibin2017/gw-batch-withdrawal/internal/validators"
)

func TestGetCoinsHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	NewGetCoinsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/coins", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got CoinsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.KnownCoins, got.Coins)
}

func TestValidateAddressesHandler(t *testing.T) {
	handler := NewValidateAddressesHandler()

	t.Run("mixed", func(t *testing.T) {
		body, _ := json.Marshal(ValidateAddressesRequest{
			Coin:      "eth",
			Addresses: []string{" " + ethAddr + " ", "0xabc", ""},
		})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/addresses/validate", bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code)
		var got ValidateAddressesResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, []AddressResult{
			{Address: ethAddr, IsValidAddress: true},
			{Address: "0xabc", AddressError: validators.MsgInvalidEthereum},
			{Address: "", AddressError: validators.MsgAddressRequired},
		}, got.Rows)
	})

	t.Run("missing_coin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/addresses/validate", bytes.NewReader([]byte(`{"addresses":["x"]}`))))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "coin is required", decodeError(t, rec).Detail)
	})
}

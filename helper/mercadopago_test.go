package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding_manager/model"
	"wedding_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGifts() []model.Gift {
	panelas := model.Gift{Title: "Jogo de Panelas", Description: "5 panelas", Price: 299.99}
	panelas.ID = 1
	toalhas := model.Gift{Title: "Jogo de Toalhas", Description: "4 toalhas", Price: 120.00}
	toalhas.ID = 2
	panelas.Image = utils.Ptr("https://example.com/panelas.jpg")
	toalhas.Image = utils.Ptr("https://example.com/toalhas.jpg")
	return []model.Gift{panelas, toalhas}
}

func newTestMercadoPago(serverURL string) *MercadoPago {
	return &MercadoPago{
		AccessToken: "test-token",
		BaseURL:     serverURL,
		FrontendURL: "http://front.example",
		Client:      http.DefaultClient,
	}
}

func TestCreateGiftCheckout_BuildsPreference(t *testing.T) {
	var received preferenceRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/checkout/preferences", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(preferenceResponse{InitPoint: "https://mp.example/checkout/123"})
	}))
	defer server.Close()

	url, err := newTestMercadoPago(server.URL).CreateGiftCheckout(testGifts())
	require.NoError(t, err)
	assert.Equal(t, "https://mp.example/checkout/123", url)

	require.Len(t, received.Items, 2)
	assert.Equal(t, "1", received.Items[0].ID)
	assert.Equal(t, 1, received.Items[0].Quantity)
	assert.Equal(t, 299.99, received.Items[0].UnitPrice)
	assert.Equal(t, "BRL", received.Items[0].CurrencyID)

	assert.Equal(t, "http://front.example/success?giftIds=1,2", received.BackURLs.Success)
	assert.Equal(t, received.BackURLs.Success, received.BackURLs.Pending)
	assert.Equal(t, "http://front.example/fails", received.BackURLs.Failure)
	assert.NotEmpty(t, received.ExternalReference)
}

func TestCreateGiftCheckout_SandboxFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(preferenceResponse{SandboxInitPoint: "https://sandbox.mp.example/checkout/123"})
	}))
	defer server.Close()

	url, err := newTestMercadoPago(server.URL).CreateGiftCheckout(testGifts())
	require.NoError(t, err)
	assert.Equal(t, "https://sandbox.mp.example/checkout/123", url)
}

func TestCreateGiftCheckout_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid access token"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestMercadoPago(server.URL).CreateGiftCheckout(testGifts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestCreateGiftCheckout_NoInitPoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(preferenceResponse{})
	}))
	defer server.Close()

	_, err := newTestMercadoPago(server.URL).CreateGiftCheckout(testGifts())
	require.Error(t, err)
}

package helper

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wedding_manager/config"
	"wedding_manager/model"

	"github.com/google/uuid"
)

// MercadoPago Checkout Pro client. Built once at startup from the app
// config and shared read-only by the gift handlers.
type MercadoPago struct {
	AccessToken string
	BaseURL     string
	FrontendURL string
	Client      *http.Client
}

func NewMercadoPago(cfg config.AppConfig) *MercadoPago {
	return &MercadoPago{
		AccessToken: cfg.MercadoPagoAccessToken,
		BaseURL:     cfg.MercadoPagoBaseURL,
		FrontendURL: cfg.FrontendURL,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type preferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	CurrencyID  string  `json:"currency_id"`
}

type preferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	Items             []preferenceItem   `json:"items"`
	BackURLs          preferenceBackURLs `json:"back_urls"`
	ExternalReference string             `json:"external_reference"`
}

type preferenceResponse struct {
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

// CreateGiftCheckout creates a payment preference for the given gifts and
// returns the redirect URL. The success and pending callbacks carry the gift
// ids back to the front-end; the live init point is preferred over sandbox.
func (m *MercadoPago) CreateGiftCheckout(gifts []model.Gift) (string, error) {
	items := make([]preferenceItem, 0, len(gifts))
	ids := make([]string, 0, len(gifts))
	for _, gift := range gifts {
		id := strconv.FormatUint(uint64(gift.ID), 10)
		ids = append(ids, id)
		items = append(items, preferenceItem{
			ID:          id,
			Title:       gift.Title,
			Description: gift.Description,
			Quantity:    1,
			UnitPrice:   gift.Price,
			CurrencyID:  "BRL",
		})
	}

	giftIdsParam := strings.Join(ids, ",")
	request := preferenceRequest{
		Items: items,
		BackURLs: preferenceBackURLs{
			Success: m.FrontendURL + "/success?giftIds=" + giftIdsParam,
			Failure: m.FrontendURL + "/fails",
			Pending: m.FrontendURL + "/success?giftIds=" + giftIdsParam,
		},
		ExternalReference: uuid.NewString(),
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, m.BaseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.AccessToken)

	resp, err := m.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("mercado pago returned %d: %s", resp.StatusCode, string(message))
	}

	var preference preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&preference); err != nil {
		return "", err
	}

	checkoutUrl := preference.InitPoint
	if checkoutUrl == "" {
		checkoutUrl = preference.SandboxInitPoint
	}
	if checkoutUrl == "" {
		return "", errors.New("mercado pago response has no init point")
	}

	return checkoutUrl, nil
}

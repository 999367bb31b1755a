package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pcadcreative/foodexpress/pkg/metrics"
)

// PreferenceNotifier posts placed orders to the recommendation side's
// internal endpoint. Failures are logged and counted, never returned:
// the sink must not be able to fail or roll back an order placement.
type PreferenceNotifier struct {
	BaseURL string
	Secret  string
	Client  *http.Client
}

func NewPreferenceNotifier(baseURL, secret string) *PreferenceNotifier {
	return &PreferenceNotifier{
		BaseURL: baseURL,
		Secret:  secret,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type preferenceUpdate struct {
	UserID       uint     `json:"userId"`
	RestaurantID uint     `json:"restaurantId"`
	OrderedItems []string `json:"orderedItems"`
}

func (n *PreferenceNotifier) OrderPlaced(userID, restaurantID uint, orderedItems []string) {
	body, err := json.Marshal(preferenceUpdate{
		UserID:       userID,
		RestaurantID: restaurantID,
		OrderedItems: orderedItems,
	})
	if err != nil {
		n.fail(userID, err)
		return
	}

	req, err := http.NewRequest(http.MethodPost,
		n.BaseURL+"/internal/recommendation/update", bytes.NewReader(body))
	if err != nil {
		n.fail(userID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-internal-secret", n.Secret)

	res, err := n.Client.Do(req)
	if err != nil {
		n.fail(userID, err)
		return
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		log.Printf("failed to update recommendations for user %d: status %d", userID, res.StatusCode)
		metrics.NotificationFailures.Inc()
	}
}

func (n *PreferenceNotifier) fail(userID uint, err error) {
	log.Printf("failed to update recommendations for user %d: %v", userID, err)
	metrics.NotificationFailures.Inc()
}

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sajid85/village-mart-customer-frontend/models"
)

// APIError carries the backend's status code and message through to the
// controllers, so a 401 can tear down the session while everything else
// surfaces as a flash message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// BackendMessage extracts the backend's error message for user display,
// falling back to the given default for transport-level failures.
func BackendMessage(err error, fallback string) string {
	if apiErr, ok := err.(*APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// BackendClient is the typed HTTP client for the grocery backend API. The
// bearer token is passed explicitly on every authenticated call; the client
// never reads it from ambient storage.
type BackendClient struct {
	baseURL string
	http    *http.Client
}

func NewBackendClient(baseURL string) *BackendClient {
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *BackendClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
			apiErr.Message = payload.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *BackendClient) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login response missing access_token")
	}
	return resp.AccessToken, nil
}

// GetProfile validates the token against the profile endpoint and returns
// the resolved user.
func (c *BackendClient) GetProfile(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *BackendClient) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) error {
	return c.do(ctx, http.MethodPatch, "/auth/profile", token, update, nil)
}

func (c *BackendClient) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	body := models.PasswordChange{CurrentPassword: currentPassword, NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, "/auth/change-password", token, body, nil)
}

func (c *BackendClient) UpdateSettings(ctx context.Context, token string, settings models.Settings) error {
	return c.do(ctx, http.MethodPatch, "/auth/settings", token, settings, nil)
}

func (c *BackendClient) DeleteAccount(ctx context.Context, token, userID string) error {
	return c.do(ctx, http.MethodDelete, "/users/"+userID, token, nil, nil)
}

// GetCart returns the server-side cart for the session.
func (c *BackendClient) GetCart(ctx context.Context, token string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *BackendClient) UpdateCartQuantity(ctx context.Context, token, itemID string, quantity int) error {
	body := map[string]int{"quantity": quantity}
	return c.do(ctx, http.MethodPatch, "/cart/"+itemID, token, body, nil)
}

func (c *BackendClient) RemoveFromCart(ctx context.Context, token, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+itemID, token, nil, nil)
}

// CreateOrder submits the checkout payload and returns the created order.
func (c *BackendClient) CreateOrder(ctx context.Context, token string, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, fmt.Errorf("invalid order response from server")
	}
	return &order, nil
}

func (c *BackendClient) GetOrders(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *BackendClient) GetOrderDetails(ctx context.Context, token, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetProducts fetches the whole catalog. The catalog endpoint is public and
// goes through the same client as everything else.
func (c *BackendClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

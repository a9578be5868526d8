// Package client is the admin-side consumer of the store API: typed CRUD
// calls, client-side pagination, and the report fallback that recomputes the
// server aggregations from raw collection fetches.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"clothing-store/models"
)

// Client talks to the admin API. Fetch, update and delete try the
// path-parameter convention (/{collection}/{id}) first and fall back to the
// query-parameter convention (/{collection}?id={id}).
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the given base URL, e.g.
// "http://127.0.0.1:8080/api/v1/admin".
func New(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTPClient: http.DefaultClient}
}

// APIError is a non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+"/"+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		json.Unmarshal(data, &errBody)
		return &APIError{StatusCode: resp.StatusCode, Message: errBody.Error}
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

func (c *Client) getSmart(collection, id string, out any) error {
	if err := c.do(http.MethodGet, collection+"/"+url.PathEscape(id), nil, out); err == nil {
		return nil
	}
	return c.do(http.MethodGet, collection+"?id="+url.QueryEscape(id), nil, out)
}

func (c *Client) putSmart(collection, id string, body any) error {
	if err := c.do(http.MethodPut, collection+"/"+url.PathEscape(id), body, nil); err == nil {
		return nil
	}
	return c.do(http.MethodPut, collection+"?id="+url.QueryEscape(id), body, nil)
}

func (c *Client) deleteSmart(collection, id string) error {
	if err := c.do(http.MethodDelete, collection+"/"+url.PathEscape(id), nil, nil); err == nil {
		return nil
	}
	return c.do(http.MethodDelete, collection+"?id="+url.QueryEscape(id), nil, nil)
}

func (c *Client) ListBrands() ([]models.Brand, error) {
	brands := []models.Brand{}
	err := c.do(http.MethodGet, "brands", nil, &brands)
	return brands, err
}

func (c *Client) GetBrand(id string) (models.Brand, error) {
	var brand models.Brand
	err := c.getSmart("brands", id, &brand)
	return brand, err
}

func (c *Client) CreateBrand(brand models.Brand) (models.Brand, error) {
	var created models.Brand
	err := c.do(http.MethodPost, "brands", brand, &created)
	return created, err
}

func (c *Client) UpdateBrand(id string, fields map[string]any) error {
	return c.putSmart("brands", id, fields)
}

func (c *Client) DeleteBrand(id string) error {
	return c.deleteSmart("brands", id)
}

func (c *Client) ListClothing() ([]models.ClothingItem, error) {
	items := []models.ClothingItem{}
	err := c.do(http.MethodGet, "clothing", nil, &items)
	return items, err
}

func (c *Client) GetClothingItem(id string) (models.ClothingItem, error) {
	var item models.ClothingItem
	err := c.getSmart("clothing", id, &item)
	return item, err
}

func (c *Client) CreateClothingItem(item models.ClothingItem) (models.ClothingItem, error) {
	var created models.ClothingItem
	err := c.do(http.MethodPost, "clothing", item, &created)
	return created, err
}

func (c *Client) UpdateClothingItem(id string, fields map[string]any) error {
	return c.putSmart("clothing", id, fields)
}

func (c *Client) DeleteClothingItem(id string) error {
	return c.deleteSmart("clothing", id)
}

// UpdateStock applies an explicit stock write: mode "decrement" or "set".
func (c *Client) UpdateStock(id, mode string, amount int) error {
	body := map[string]any{"mode": mode, "amount": amount}
	return c.do(http.MethodPut, "clothing/"+url.PathEscape(id)+"/stock", body, nil)
}

func (c *Client) ListUsers() ([]models.User, error) {
	users := []models.User{}
	err := c.do(http.MethodGet, "users", nil, &users)
	return users, err
}

func (c *Client) GetUser(id string) (models.User, error) {
	var user models.User
	err := c.getSmart("users", id, &user)
	return user, err
}

func (c *Client) CreateUser(user models.User) (models.User, error) {
	var created models.User
	err := c.do(http.MethodPost, "users", user, &created)
	return created, err
}

func (c *Client) UpdateUser(id string, fields map[string]any) error {
	return c.putSmart("users", id, fields)
}

func (c *Client) DeleteUser(id string) error {
	return c.deleteSmart("users", id)
}

func (c *Client) ListSales() ([]models.Sale, error) {
	sales := []models.Sale{}
	err := c.do(http.MethodGet, "sales", nil, &sales)
	return sales, err
}

func (c *Client) GetSale(id string) (models.Sale, error) {
	var sale models.Sale
	err := c.getSmart("sales", id, &sale)
	return sale, err
}

func (c *Client) CreateSale(sale models.Sale) (models.Sale, error) {
	var created models.Sale
	err := c.do(http.MethodPost, "sales", sale, &created)
	return created, err
}

func (c *Client) UpdateSale(id string, fields map[string]any) error {
	return c.putSmart("sales", id, fields)
}

func (c *Client) DeleteSale(id string) error {
	return c.deleteSmart("sales", id)
}

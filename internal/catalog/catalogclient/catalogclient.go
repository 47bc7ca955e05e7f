// Package catalogclient is the controller's typed HTTP client for the
// catalog RPC surface (spec.md §4.6: "the controller's connection to the
// catalog is opened once at boot ... and is held for the life of the
// process"). Only the fluid-regulator surface is wired today, since
// get-pump-gpio-info is the controller's only catalog-dependent operation.
package catalogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"udm/internal/apperr"
	"udm/internal/model"
)

const defaultTimeout = 10 * time.Second

// Client calls a running catalog daemon's HTTP/JSON RPC surface.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config configures a Client.
type Config struct {
	// BaseURL is the catalog daemon's base address, e.g.
	// "http://localhost:8080/v1/catalog".
	BaseURL string
	// HTTPClient optionally overrides the client used to execute requests.
	HTTPClient *http.Client
}

// New constructs a Client. cfg.BaseURL must be non-empty.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, apperr.New(apperr.InvalidConfiguration, "catalogclient: empty base url")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{baseURL: cfg.BaseURL, httpClient: httpClient}, nil
}

// AddFluidRegulator creates a fluid regulator and returns its assigned id.
func (c *Client) AddFluidRegulator(ctx context.Context, fr model.FluidRegulator) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/fluid-regulators", fr, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateFluidRegulator updates a fluid regulator by id.
func (c *Client) UpdateFluidRegulator(ctx context.Context, fr model.FluidRegulator) error {
	return c.do(ctx, http.MethodPatch, "/fluid-regulators/"+strconv.FormatInt(fr.ID, 10), fr, nil)
}

// RemoveFluidRegulator deletes a fluid regulator by id.
func (c *Client) RemoveFluidRegulator(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/fluid-regulators/"+strconv.FormatInt(id, 10), nil, nil)
}

// CollectFluidRegulators lists fluid regulators matching filterText
// (internal/filter grammar). Used by get-pump-gpio-info to resolve a
// pump number or gpio pin to its owning regulator (spec.md §4.6).
func (c *Client) CollectFluidRegulators(ctx context.Context, filterText string) ([]model.FluidRegulator, error) {
	path := "/fluid-regulators"
	if filterText != "" {
		path += "?filter=" + filterText
	}
	var regs []model.FluidRegulator
	if err := c.do(ctx, http.MethodGet, path, nil, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, reqBody, respBody any) error {
	var bodyReader io.Reader
	if reqBody != nil {
		encoded, err := json.Marshal(reqBody)
		if err != nil {
			return apperr.Wrap(apperr.InvalidInput, "catalogclient: marshal request", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return apperr.Wrap(apperr.ApiFailure, "catalogclient: build request", err)
	}
	if reqBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return apperr.Wrap(apperr.ApiFailure, "catalogclient: request failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Wrap(apperr.ApiFailure, "catalogclient: read response", err)
	}

	if resp.StatusCode >= 300 {
		var eb errorBody
		if jsonErr := json.Unmarshal(raw, &eb); jsonErr == nil && eb.Message != "" {
			return apperr.Newf(apperr.ApiFailure, "catalogclient: %s (%s)", eb.Message, eb.Kind)
		}
		return apperr.Newf(apperr.ApiFailure, "catalogclient: unexpected status %s", resp.Status)
	}

	if respBody == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, respBody); err != nil {
		return apperr.Wrap(apperr.ApiFailure, fmt.Sprintf("catalogclient: decode response for %s %s", method, path), err)
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sealbox/internal/domain"
)

// Client talks JSON over HTTP to a conversion server.
type Client struct {
	Base string
	HTTP *http.Client
}

// New returns a client for the server at base. A nil httpClient falls back
// to http.DefaultClient.
func New(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: httpClient}
}

func (c *Client) FetchServerKey(ctx context.Context) (string, error) {
	var out struct {
		ServerPublicKey string `json:"serverPublicKey"`
		Error           string `json:"error"`
	}
	if err := c.do(ctx, http.MethodGet, "/public-key", nil, &out, &out.Error); err != nil {
		return "", err
	}
	if out.ServerPublicKey == "" {
		return "", fmt.Errorf("server sent no public key")
	}
	return out.ServerPublicKey, nil
}

func (c *Client) RegisterClientKey(ctx context.Context, id domain.ClientID, publicKeyPEM string) error {
	in := struct {
		ClientID     string `json:"clientId"`
		PublicKeyPEM string `json:"publicKeyPem"`
	}{ClientID: id.String(), PublicKeyPEM: publicKeyPEM}
	var out struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	return c.do(ctx, http.MethodPost, "/client-public-key", in, &out, &out.Error)
}

func (c *Client) UploadEncrypted(ctx context.Context, id domain.ClientID, encryptedKey, encryptedData, mediaType string) (domain.UploadResult, error) {
	in := struct {
		ClientID      string `json:"clientId"`
		EncryptedKey  string `json:"encryptedKey"`
		EncryptedData string `json:"encryptedData"`
		MediaType     string `json:"mediaType,omitempty"`
	}{ClientID: id.String(), EncryptedKey: encryptedKey, EncryptedData: encryptedData, MediaType: mediaType}
	var out struct {
		Status          string `json:"status"`
		EncryptedKey    string `json:"encryptedKey"`
		EncryptedResult string `json:"encryptedResult"`
		MediaType       string `json:"mediaType"`
		Error           string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/upload-encrypted", in, &out, &out.Error); err != nil {
		return domain.UploadResult{}, err
	}
	if out.EncryptedResult == "" || out.EncryptedKey == "" {
		return domain.UploadResult{}, fmt.Errorf("server sent an incomplete upload result")
	}
	return domain.UploadResult{
		EncryptedResult: out.EncryptedResult,
		EncryptedKey:    out.EncryptedKey,
		MediaType:       out.MediaType,
	}, nil
}

// do sends one JSON request and decodes the response into out. errField
// points at out's error field so a server-reported error wins over a bare
// status line.
func (c *Client) do(ctx context.Context, method, path string, in, out any, errField *string) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	// Decode even on failure statuses; the server reports detail in "error".
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil && resp.StatusCode/100 == 2 {
			return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
		}
	}
	if errField != nil && *errField != "" {
		return fmt.Errorf("%s %s: server: %s", method, path, *errField)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	return nil
}

var _ domain.ConvertClient = (*Client)(nil)

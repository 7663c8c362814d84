package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"minesweeper/communication"
	"minesweeper/game"
	"minesweeper/gamemaster"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// StatusError is a non-2xx response. It matches the sentinel error the
// server classified it from.
type StatusError struct {
	Status  int
	Code    string
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (e *StatusError) Unwrap() error {
	return communication.Sentinel(e.Code)
}

type ClientCommunicator struct {
	serverURL  string
	httpClient *http.Client
	ctx        context.Context
}

type Option func(*ClientCommunicator)

func WithHTTPClient(c *http.Client) Option {
	return func(cc *ClientCommunicator) {
		cc.httpClient = c
	}
}

// WithContext bounds every request made by the communicator.
func WithContext(ctx context.Context) Option {
	return func(cc *ClientCommunicator) {
		cc.ctx = ctx
	}
}

// NewClientCommunicator initializes and returns a new ClientCommunicator.
func NewClientCommunicator(serverURL string, opts ...Option) *ClientCommunicator {
	cc := &ClientCommunicator{
		serverURL:  strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		ctx:        context.Background(),
	}
	for _, opt := range opts {
		opt(cc)
	}
	return cc
}

var _ communication.Communicator = (*ClientCommunicator)(nil)

func (cc *ClientCommunicator) NewGame(params gamemaster.Params) (gamemaster.Snapshot, error) {
	var snap gamemaster.Snapshot
	err := cc.do(http.MethodPost, "/games", params, &snap)
	return snap, err
}

func (cc *ClientCommunicator) GetGame(id string) (gamemaster.Snapshot, error) {
	var snap gamemaster.Snapshot
	err := cc.do(http.MethodGet, "/games/"+url.PathEscape(id), nil, &snap)
	return snap, err
}

func (cc *ClientCommunicator) SendMove(id string, move game.Move) (gamemaster.Snapshot, error) {
	var snap gamemaster.Snapshot
	err := cc.do(http.MethodPost, "/games/"+url.PathEscape(id)+"/moves", move, &snap)
	return snap, err
}

func (cc *ClientCommunicator) EndGame(id string) error {
	return cc.do(http.MethodDelete, "/games/"+url.PathEscape(id), nil, nil)
}

func (cc *ClientCommunicator) do(method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(cc.ctx, method, cc.serverURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := cc.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e communication.ErrorResponse
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &e) != nil || e.Error == "" {
			e.Error = strings.TrimSpace(string(data))
		}
		return &StatusError{Status: resp.StatusCode, Code: e.Code, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

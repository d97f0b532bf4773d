package client

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Authenticate obtains a bearer token from POST /authToken and stores it
// for subsequent calls. A 200 response without a token field is an
// authentication failure ([ErrMissingToken]); the stored token is left
// untouched on every failure path.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	req, err := c.newRequest(ctx, Anonymous)
	if err != nil {
		return err
	}

	reqID := uuid.NewString()
	c.options.requestLogger.Debugf("auth %s: attempting authentication for user %s", reqID, username)

	resp, err := req.
		SetBody(authRequest{Username: username, Password: password}).
		Post("/authToken")
	if err != nil {
		c.options.requestLogger.Errorf("auth %s: authentication failed: %v", reqID, err)
		return &TransportError{Op: "authenticate", Err: err}
	}

	if resp.IsError() {
		c.options.requestLogger.Errorf("auth %s: authentication failed: status %d: %s",
			reqID, resp.StatusCode(), resp.String())
		return newStatusError(resp)
	}

	var body authResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		c.options.requestLogger.Errorf("auth %s: malformed authentication response: %v", reqID, err)
		return &SchemaError{Op: "authenticate", Err: err}
	}

	if body.Token == "" {
		c.options.requestLogger.Errorf("auth %s: no token received in response", reqID)
		return &SchemaError{Op: "authenticate", Err: ErrMissingToken}
	}

	c.setToken(body.Token)
	c.options.requestLogger.Debugf("auth %s: authentication successful", reqID)

	return nil
}

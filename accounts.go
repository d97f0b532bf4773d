package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is one account record as returned by the service. The service
// owns the schema; the record echoes whatever fields were present.
type Account map[string]any

// ID returns the account's accountId field, or "" when absent.
func (a Account) ID() string {
	id, _ := a["accountId"].(string)
	return id
}

// Holder returns the account's accountHolder field, or "" when absent.
func (a Account) Holder() string {
	holder, _ := a["accountHolder"].(string)
	return holder
}

// Balance is a balance record as returned by the service.
type Balance map[string]any

// AccountID returns the balance's accountId field, or "" when absent.
func (b Balance) AccountID() string {
	id, _ := b["accountId"].(string)
	return id
}

// Currency returns the balance's currency field, or "" when absent.
func (b Balance) Currency() string {
	currency, _ := b["currency"].(string)
	return currency
}

// Amount returns the balance field as a decimal, or zero when the field
// is absent or not a number.
func (b Balance) Amount() decimal.Decimal {
	switch v := b["balance"].(type) {
	case json.Number:
		return numberToDecimal(v)
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		return numberToDecimal(json.Number(v))
	default:
		return decimal.Zero
	}
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

// ValidateAccount reports whether an account exists and is active via
// GET /accounts/validate/{id}. Unlike the [AuthMode]-taking operations
// it always attaches a stored bearer token; the service treats account
// validation as an authenticated concern once a token exists.
func (c *Client) ValidateAccount(ctx context.Context, accountID string) (bool, error) {
	if accountID == "" {
		return false, &ValidationError{Reason: "account id cannot be empty"}
	}

	req, err := c.newRequest(ctx, Bearer)
	if err != nil {
		return false, err
	}

	reqID := uuid.NewString()
	c.options.requestLogger.Debugf("validate %s: validating account %s", reqID, accountID)

	resp, err := req.Get("/accounts/validate/" + url.PathEscape(accountID))
	if err != nil {
		c.options.requestLogger.Errorf("validate %s: account validation failed: %v", reqID, err)
		return false, &TransportError{Op: "validate account", Err: err}
	}

	if resp.IsError() {
		c.options.requestLogger.Errorf("validate %s: account validation failed: status %d: %s",
			reqID, resp.StatusCode(), resp.String())
		return false, newStatusError(resp)
	}

	var body validateResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		c.options.requestLogger.Errorf("validate %s: malformed validation response: %v", reqID, err)
		return false, &SchemaError{Op: "validate account", Err: err}
	}

	c.options.requestLogger.Debugf("validate %s: account %s validation result: %t",
		reqID, accountID, body.Valid)

	return body.Valid, nil
}

// GetAccounts retrieves all accounts via GET /accounts.
func (c *Client) GetAccounts(ctx context.Context, mode AuthMode) ([]Account, error) {
	req, err := c.newRequest(ctx, mode)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	c.options.requestLogger.Debugf("accounts %s: fetching accounts list", reqID)

	resp, err := req.Get("/accounts")
	if err != nil {
		c.options.requestLogger.Errorf("accounts %s: failed to retrieve accounts: %v", reqID, err)
		return nil, &TransportError{Op: "get accounts", Err: err}
	}

	if resp.IsError() {
		c.options.requestLogger.Errorf("accounts %s: failed to retrieve accounts: status %d: %s",
			reqID, resp.StatusCode(), resp.String())
		return nil, newStatusError(resp)
	}

	var accounts []Account
	if err := decodeJSON(resp.Body(), &accounts); err != nil {
		c.options.requestLogger.Errorf("accounts %s: malformed accounts response: %v", reqID, err)
		return nil, &SchemaError{Op: "get accounts", Err: err}
	}

	c.options.requestLogger.Debugf("accounts %s: retrieved %d accounts", reqID, len(accounts))

	return accounts, nil
}

// GetAccountBalance retrieves one account's balance via
// GET /accounts/balance/{id}.
func (c *Client) GetAccountBalance(ctx context.Context, accountID string, mode AuthMode) (Balance, error) {
	if accountID == "" {
		return nil, &ValidationError{Reason: "account id cannot be empty"}
	}

	req, err := c.newRequest(ctx, mode)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	c.options.requestLogger.Debugf("balance %s: fetching balance for account %s", reqID, accountID)

	resp, err := req.Get("/accounts/balance/" + url.PathEscape(accountID))
	if err != nil {
		c.options.requestLogger.Errorf("balance %s: failed to retrieve balance: %v", reqID, err)
		return nil, &TransportError{Op: "get account balance", Err: err}
	}

	if resp.IsError() {
		c.options.requestLogger.Errorf("balance %s: failed to retrieve balance: status %d: %s",
			reqID, resp.StatusCode(), resp.String())
		return nil, newStatusError(resp)
	}

	var balance Balance
	if err := decodeJSON(resp.Body(), &balance); err != nil {
		c.options.requestLogger.Errorf("balance %s: malformed balance response: %v", reqID, err)
		return nil, &SchemaError{Op: "get account balance", Err: err}
	}

	c.options.requestLogger.Debugf("balance %s: balance retrieved for %s: %s",
		reqID, accountID, balance.Amount())

	return balance, nil
}

// decodeJSON unmarshals loosely typed records with numbers preserved as
// json.Number, so balance amounts survive without float rounding.
func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

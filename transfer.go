package client

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferRequest describes a fund transfer between two accounts.
// Validate rejects it before any network call when the amount is not
// positive or either account number is empty.
type TransferRequest struct {
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
}

// Validate returns a [*ValidationError] when the request must not be
// sent to the service.
func (r TransferRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return &ValidationError{Reason: "amount must be greater than 0"}
	}
	if r.FromAccount == "" || r.ToAccount == "" {
		return &ValidationError{Reason: "account numbers cannot be empty"}
	}
	return nil
}

// TransferResult is the service's record of a completed transfer.
// Fields the service omitted are left at their zero values.
type TransferResult struct {
	TransactionID string
	Status        string
	Message       string
	FromAccount   string
	ToAccount     string
	Amount        decimal.Decimal
}

// Amounts travel as bare JSON numbers; json.Number keeps the decimal
// representation exact in both directions.
type transferPayload struct {
	FromAccount string      `json:"fromAccount"`
	ToAccount   string      `json:"toAccount"`
	Amount      json.Number `json:"amount"`
}

type transferResponse struct {
	TransactionID string      `json:"transactionId"`
	Status        string      `json:"status"`
	Message       string      `json:"message"`
	FromAccount   string      `json:"fromAccount"`
	ToAccount     string      `json:"toAccount"`
	Amount        json.Number `json:"amount"`
}

// TransferFunds submits a transfer via POST /transfer. In [Bearer] mode
// the stored token is attached; [Anonymous] suppresses it entirely, so
// both anonymous and authenticated flows work from one client instance.
func (c *Client) TransferFunds(ctx context.Context, transfer TransferRequest, mode AuthMode) (*TransferResult, error) {
	if err := transfer.Validate(); err != nil {
		c.options.requestLogger.Errorf("invalid transfer request: %v", err)
		return nil, err
	}

	req, err := c.newRequest(ctx, mode)
	if err != nil {
		return nil, err
	}

	reqID := uuid.NewString()
	c.options.requestLogger.Debugf("transfer %s: initiating transfer %s -> %s, amount %s",
		reqID, transfer.FromAccount, transfer.ToAccount, transfer.Amount)

	resp, err := req.
		SetBody(transferPayload{
			FromAccount: transfer.FromAccount,
			ToAccount:   transfer.ToAccount,
			Amount:      json.Number(transfer.Amount.String()),
		}).
		Post("/transfer")
	if err != nil {
		c.options.requestLogger.Errorf("transfer %s: transfer failed: %v", reqID, err)
		return nil, &TransportError{Op: "transfer", Err: err}
	}

	if resp.IsError() {
		c.options.requestLogger.Errorf("transfer %s: transfer failed: status %d: %s",
			reqID, resp.StatusCode(), resp.String())
		return nil, newStatusError(resp)
	}

	var body transferResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		c.options.requestLogger.Errorf("transfer %s: malformed transfer response: %v", reqID, err)
		return nil, &SchemaError{Op: "transfer", Err: err}
	}

	result := &TransferResult{
		TransactionID: body.TransactionID,
		Status:        body.Status,
		Message:       body.Message,
		FromAccount:   body.FromAccount,
		ToAccount:     body.ToAccount,
		Amount:        numberToDecimal(body.Amount),
	}

	c.options.requestLogger.Debugf("transfer %s: transfer successful, transaction %s, status %s",
		reqID, result.TransactionID, result.Status)

	return result, nil
}

// numberToDecimal converts a JSON number to a decimal, treating an
// absent field and an unparsable value as zero, matching the defaulting
// applied to the other response fields.
func numberToDecimal(n json.Number) decimal.Decimal {
	if n == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

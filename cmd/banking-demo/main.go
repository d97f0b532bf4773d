// Command banking-demo walks through the banking client's operations
// against a running banking service: an anonymous transfer, an
// authenticated transfer, account validation, account listing, a balance
// query, and a deliberately failing transfer to show error handling.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"

	client "github.com/keluth/banking-go-client"
)

func main() {
	baseURL := pflag.String("base-url", "http://localhost:8123", "base URL of the banking service")
	timeout := pflag.Duration("timeout", 30*time.Second, "per-attempt request timeout")
	retries := pflag.Int("retries", 3, "retries after the initial attempt")
	username := pflag.String("username", "testuser", "username for authentication")
	password := pflag.String("password", "password", "password for authentication")
	verbose := pflag.BoolP("verbose", "v", false, "log every request")
	pflag.Parse()

	logger := client.RequestLogger(&client.NoopLogger{})
	if *verbose {
		logger = &client.StdLogger{Logger: log.New(os.Stderr, "banking-demo ", log.LstdFlags)}
	}

	c, err := client.New(*baseURL,
		client.WithTimeout(*timeout),
		client.WithRetryCount(*retries),
		client.WithRequestLogger(logger),
	)
	if err != nil {
		log.Fatalf("creating client: %v", err)
	}
	defer c.Close()

	ctx := context.Background()

	fmt.Println("[1] Basic transfer (no authentication)")
	runTransfer(ctx, c, "ACC1000", "ACC1001", "100.00", client.Anonymous)

	fmt.Println("\n[2] Transfer with authentication")
	if err := c.Authenticate(ctx, *username, *password); err != nil {
		fmt.Printf("  authentication failed: %v\n", err)
	} else {
		fmt.Println("  authenticated")
		runTransfer(ctx, c, "ACC1002", "ACC1003", "250.50", client.Bearer)
	}

	fmt.Println("\n[3] Account validation")
	for _, id := range []string{"ACC1000", "ACC2000", "ACC9999"} {
		valid, err := c.ValidateAccount(ctx, id)
		switch {
		case err != nil:
			fmt.Printf("  %s: %v\n", id, err)
		case valid:
			fmt.Printf("  %s: valid\n", id)
		default:
			fmt.Printf("  %s: invalid\n", id)
		}
	}

	fmt.Println("\n[4] Retrieve all accounts")
	accounts, err := c.GetAccounts(ctx, client.Anonymous)
	if err != nil {
		fmt.Printf("  failed to retrieve accounts: %v\n", err)
	} else {
		fmt.Printf("  found %d accounts\n", len(accounts))
		for i, acc := range accounts {
			if i == 5 {
				break
			}
			fmt.Printf("  - %s: %s\n", acc.ID(), acc.Holder())
		}
	}

	fmt.Println("\n[5] Get account balance")
	balance, err := c.GetAccountBalance(ctx, "ACC1000", client.Anonymous)
	if err != nil {
		fmt.Printf("  failed to retrieve balance: %v\n", err)
	} else {
		fmt.Printf("  account %s: %s %s\n", balance.AccountID(), balance.Amount(), balance.Currency())
	}

	fmt.Println("\n[6] Error handling demo (invalid account)")
	runTransfer(ctx, c, "ACC9999", "ACC1001", "50.00", client.Anonymous)
}

func runTransfer(ctx context.Context, c *client.Client, from, to, amount string, mode client.AuthMode) {
	result, err := c.TransferFunds(ctx, client.TransferRequest{
		FromAccount: from,
		ToAccount:   to,
		Amount:      decimal.RequireFromString(amount),
	}, mode)
	if err != nil {
		fmt.Printf("  transfer failed: %v\n", err)
		return
	}
	fmt.Printf("  transaction %s: %s (%s)\n", result.TransactionID, result.Status, result.Message)
}

// Command marzpay is a small CLI over the SDK for poking the MarzPay
// API from a terminal. Credentials come from the environment.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	marzpay "github.com/Katznicho/marzpay-go"
	"github.com/Katznicho/marzpay-go/account"
	"github.com/Katznicho/marzpay-go/collections"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	client, err := marzpay.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "marzpay: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var result marzpay.Result
	switch os.Args[1] {
	case "collect":
		result, err = runCollect(ctx, client, os.Args[2:])
	case "status":
		result, err = runStatus(ctx, client, os.Args[2:])
	case "list":
		result, err = runList(ctx, client, os.Args[2:])
	case "services":
		result, err = client.Collections().GetServices(ctx)
	case "balance":
		result, err = client.Account().GetBalance(ctx)
	case "transactions":
		result, err = runTransactions(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "marzpay: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marzpay: encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func runCollect(ctx context.Context, client *marzpay.Client, args []string) (marzpay.Result, error) {
	fs := flag.NewFlagSet("collect", flag.ExitOnError)
	amount := fs.Int64("amount", 0, "amount in UGX (500-10,000,000)")
	phone := fs.String("phone", "", "customer phone number")
	ref := fs.String("reference", "", "unique reference (generated when empty)")
	description := fs.String("description", "", "payment description")
	callback := fs.String("callback", "", "webhook URL override")
	_ = fs.Parse(args)

	if *ref == "" {
		*ref = client.Collections().GenerateReference()
	}

	return client.Collections().CollectMoney(ctx, collections.CollectParams{
		Amount:      *amount,
		PhoneNumber: *phone,
		Reference:   *ref,
		Description: *description,
		CallbackURL: *callback,
	})
}

func runStatus(ctx context.Context, client *marzpay.Client, args []string) (marzpay.Result, error) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	id := fs.String("id", "", "collection ID")
	_ = fs.Parse(args)

	return client.Collections().GetCollection(ctx, *id)
}

func runList(ctx context.Context, client *marzpay.Client, args []string) (marzpay.Result, error) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "items per page")
	status := fs.String("status", "", "filter by status")
	from := fs.String("from", "", "from date (YYYY-MM-DD)")
	to := fs.String("to", "", "to date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	return client.Collections().GetCollections(ctx, collections.ListFilters{
		Page:     *page,
		Limit:    *limit,
		Status:   *status,
		FromDate: *from,
		ToDate:   *to,
	})
}

func runTransactions(ctx context.Context, client *marzpay.Client, args []string) (marzpay.Result, error) {
	fs := flag.NewFlagSet("transactions", flag.ExitOnError)
	page := fs.Int("page", 0, "page number")
	limit := fs.Int("limit", 0, "items per page")
	_ = fs.Parse(args)

	return client.Account().GetTransactions(ctx, account.ListFilters{Page: *page, Limit: *limit})
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: marzpay <command> [flags]

commands:
  collect       initiate a money collection
  status        fetch one collection by -id
  list          list collections with optional filters
  services      list available collection services
  balance       show the account balance
  transactions  list account transactions`)
}

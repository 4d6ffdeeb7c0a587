package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-flow/internal/service"
	"github.com/carson-networks/budget-flow/internal/storage/transaction"
)

// transactionFilter builds the filter from --from, --to and --account.
func transactionFilter(c *cli.Context) (*service.TransactionFilter, error) {
	var filter service.TransactionFilter
	set := false

	if from := c.String("from"); from != "" {
		t, err := transaction.ParseDate(from)
		if err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
		filter.From = &t
		set = true
	}
	if to := c.String("to"); to != "" {
		t, err := transaction.ParseDate(to)
		if err != nil {
			return nil, fmt.Errorf("--to: %w", err)
		}
		filter.To = &t
		set = true
	}
	if account := c.String("account"); account != "" {
		a, err := service.ParseAccountType(account)
		if err != nil {
			return nil, fmt.Errorf("--account: %w", err)
		}
		filter.Account = &a
		set = true
	}

	if !set {
		return nil, nil
	}
	return &filter, nil
}

func categorizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "categorize",
		Usage: "print the category of every transaction",
		Flags: transactionFlags(),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()

			filter, err := transactionFilter(c)
			if err != nil {
				return err
			}
			transactions, err := e.Service.Categorize.ListTransactions(c.Context, filter)
			if err != nil {
				return err
			}
			categorized, err := e.Service.Categorize.Categorize(c.Context, transactions)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tKEYWORD\tDESCRIPTION")
			for _, tx := range categorized {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					formatDate(tx.Date), tx.Amount.StringFixed(2), tx.Category, tx.Keyword, tx.Description)
			}
			return w.Flush()
		},
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

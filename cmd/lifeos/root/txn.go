package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nataschneider2001/life-Os/internal/domain"
	"github.com/nataschneider2001/life-Os/internal/engine"
	"github.com/nataschneider2001/life-Os/internal/ui"
)

func newTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage finance transactions",
	}
	cmd.AddCommand(newTxAddCmd(), newTxRmCmd(), newTxListCmd())
	return cmd
}

func newTxAddCmd() *cobra.Command {
	var txType string
	var category string

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record a transaction",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("description and amount are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tt, err := domain.ParseTransactionType(txType)
			if err != nil {
				return err
			}

			next, out, err := transition(cmd.Context(), engine.AddTransaction{
				Description: args[0],
				Amount:      args[1],
				Type:        tt,
				Category:    category,
				Now:         time.Now(),
			})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("invalid transaction: amount %q must be a non-negative number", args[1])
			}

			tx := next.Transactions[0]
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.MoneyText(next.Settings.Currency, tx.Amount, tx.Type == domain.TransactionIncome),
				tx.Description, ui.Muted.Render("#"+shortID(tx.ID)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "Type (income|expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "Food", "Category")

	return cmd
}

func newTxRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveTxID(ctx, args[0])
			if err != nil {
				return err
			}

			_, out, err := transition(ctx, engine.DeleteTransaction{ID: id})
			if err != nil {
				return err
			}
			if !out.Changed {
				return fmt.Errorf("transaction %s not found", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("🗑 Deleted")+" "+ui.Muted.Render("#"+shortID(id)))
			return nil
		},
	}
	return cmd
}

func newTxListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions (newest first) with totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := st.Load(ctx)
			if err != nil {
				return err
			}
			cur := state.Settings.Currency

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCoin, "Finance"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Balance", fmt.Sprintf("%s %.2f", cur, state.Balance())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Income", fmt.Sprintf("%s %.2f", cur, state.TotalIncome())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Expenses", fmt.Sprintf("%s %.2f", cur, state.TotalExpense())))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			if len(state.Transactions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no transactions)"))
				return nil
			}
			for _, tx := range state.Transactions {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s %s\n",
					ui.Muted.Render(tx.Date.Format("2006-01-02")),
					ui.Muted.Render("#"+shortID(tx.ID)),
					tx.Description,
					ui.MoneyText(cur, tx.Amount, tx.Type == domain.TransactionIncome),
					ui.Muted.Render(tx.Category))
			}
			return nil
		},
	}
	return cmd
}

func resolveTxID(ctx context.Context, input string) (string, error) {
	st, cleanup, err := openStore(ctx)
	if err != nil {
		return "", err
	}
	defer cleanup()

	state, err := st.Load(ctx)
	if err != nil {
		return "", err
	}

	var ids []string
	for _, tx := range state.Transactions {
		ids = append(ids, tx.ID)
	}
	return resolveID(ids, input)
}

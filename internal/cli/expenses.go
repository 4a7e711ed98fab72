package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/google/subcommands"
	"github.com/ukydev/trip-planner/internal/ident"
	"github.com/ukydev/trip-planner/internal/ledger"
	"github.com/ukydev/trip-planner/internal/models"
)

type addExpenseCmd struct {
	app      *App
	title    string
	amount   int64
	payer    string
	involved string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a shared expense" }
func (*addExpenseCmd) Usage() string {
	return `add-expense -title <title> -amount <n> -payer <member> [-involved a,b,c]

  Amount is in whole units of the primary currency. Without -involved the
  cost is split between all members.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.title, "title", "", "What was paid for")
	f.Int64Var(&c.amount, "amount", 0, "Amount in the primary currency")
	f.StringVar(&c.payer, "payer", "", "Who paid")
	f.StringVar(&c.involved, "involved", "", "Comma separated members sharing the cost")
}

func (c *addExpenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var added models.Expense
	status := c.app.mutate(ctx, "add expense", func(doc *models.TripDocument) error {
		exp, err := ledger.NewExpense(ledger.ExpenseInput{
			Title:    c.title,
			Amount:   c.amount,
			Payer:    c.payer,
			Involved: splitList(c.involved),
		}, doc.Members, ident.New(), time.Now())
		if err != nil {
			return err
		}
		doc.Expenses = append(doc.Expenses, exp)
		added = exp
		return nil
	})
	if status == subcommands.ExitSuccess {
		fmt.Fprintf(c.app.Out, "Added expense %s\n", added.ID)
	}
	return status
}

type rmExpenseCmd struct {
	app *App
	id  string
}

func (*rmExpenseCmd) Name() string     { return "rm-expense" }
func (*rmExpenseCmd) Synopsis() string { return "remove an expense" }
func (*rmExpenseCmd) Usage() string {
	return `rm-expense -id <expense>
`
}

func (c *rmExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Expense id (required)")
}

func (c *rmExpenseCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.app.mutate(ctx, "remove expense", func(doc *models.TripDocument) error {
		if !ledger.DeleteExpense(doc, c.id) {
			return notFound("expense", c.id)
		}
		return nil
	})
}

type balancesCmd struct {
	app    *App
	settle bool
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "show expenses, balances and who should pay whom" }
func (*balancesCmd) Usage() string {
	return `balances [-settle]

  Lists the expenses in the order they were entered, the total, and the net
  balance of every member. Positive balances are owed money.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.settle, "settle", false, "Also print a settle-up plan")
}

func (c *balancesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := c.app.read(ctx)
	if err != nil {
		return c.app.fail(err)
	}
	f, err := c.app.formatter()
	if err != nil {
		return c.app.fail(err)
	}
	balances, err := ledger.ComputeBalances(doc.Members, doc.Expenses)
	if err != nil {
		return c.app.fail(err)
	}
	rate := doc.CurrencyRate
	out := c.app.Out

	for _, exp := range doc.Expenses {
		fmt.Fprintf(out, "%s  %-24s %10s  paid by %s\n", exp.ID, exp.Title, f.Format(float64(exp.Amount), ledger.Primary, rate), exp.Payer)
	}
	total := float64(ledger.TotalSpent(doc.Expenses))
	fmt.Fprintf(out, "Total: %s (%s)\n", f.Format(total, ledger.Primary, rate), f.Format(total, ledger.Secondary, rate))

	for _, b := range ledger.OrderedBalances(doc.Members, doc.Expenses, balances) {
		name := b.Member
		if b.Phantom {
			name += " (not a member)"
		}
		fmt.Fprintf(out, "%-20s %10s %10s\n", name, f.Format(b.Amount, ledger.Primary, rate), f.Format(b.Amount, ledger.Secondary, rate))
	}

	if c.settle {
		for _, t := range ledger.Settle(balances) {
			fmt.Fprintf(out, "%s pays %s %s\n", t.From, t.To, f.Format(t.Amount, ledger.Primary, rate))
		}
	}
	return subcommands.ExitSuccess
}

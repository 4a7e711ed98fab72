// Package ledger derives who owes whom from the shared expenses of a trip.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/ukydev/trip-planner/internal/models"
)

// Balance is the signed net position of one person. Positive means the
// others owe them money.
type Balance struct {
	Member  string  `json:"member"`
	Amount  float64 `json:"amount"`
	Phantom bool    `json:"phantom,omitempty"` // not in the declared member list
}

// ComputeBalances credits every payer with the full amount and debits each
// involved person with an equal share. Every member appears in the result,
// and names that only occur in expenses get an entry of their own.
func ComputeBalances(members []string, expenses []models.Expense) (map[string]float64, error) {
	balances := make(map[string]float64, len(members))
	for _, m := range members {
		balances[m] = 0
	}
	for _, exp := range expenses {
		if len(exp.Involved) == 0 {
			return nil, fmt.Errorf("%w: expense %s has nobody to split with", models.ErrInvalidExpense, exp.ID)
		}
		amount := float64(exp.Amount)
		balances[exp.Payer] += amount
		share := amount / float64(len(exp.Involved))
		for _, p := range exp.Involved {
			balances[p] -= share
		}
	}
	return balances, nil
}

// OrderedBalances lists balances for display: declared members first in their
// order, then any other names in the order they appear in expenses.
func OrderedBalances(members []string, expenses []models.Expense, balances map[string]float64) []Balance {
	out := make([]Balance, 0, len(balances))
	seen := make(map[string]bool, len(balances))
	for _, m := range members {
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, Balance{Member: m, Amount: balances[m]})
	}
	add := func(name string) {
		if seen[name] {
			return
		}
		if _, ok := balances[name]; !ok {
			return
		}
		seen[name] = true
		out = append(out, Balance{Member: name, Amount: balances[name], Phantom: true})
	}
	for _, exp := range expenses {
		add(exp.Payer)
		for _, p := range exp.Involved {
			add(p)
		}
	}
	return out
}

// TotalSpent sums the amounts of all expenses.
func TotalSpent(expenses []models.Expense) int64 {
	var total int64
	for _, exp := range expenses {
		total += exp.Amount
	}
	return total
}

// ExpenseInput carries the user-supplied fields of a new expense.
type ExpenseInput struct {
	Title    string
	Amount   int64
	Payer    string
	Involved []string // empty means everybody
}

// NewExpense validates in and builds an expense dated now. When no one is
// listed as involved the cost is split between all members.
func NewExpense(in ExpenseInput, members []string, id string, now time.Time) (models.Expense, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Expense{}, fmt.Errorf("%w: title is required", models.ErrInvalidExpense)
	}
	if in.Amount < 0 {
		return models.Expense{}, fmt.Errorf("%w: amount %d is negative", models.ErrInvalidExpense, in.Amount)
	}
	if strings.TrimSpace(in.Payer) == "" {
		return models.Expense{}, fmt.Errorf("%w: payer is required", models.ErrInvalidExpense)
	}
	involved := in.Involved
	if len(involved) == 0 {
		involved = members
	}
	if len(involved) == 0 {
		return models.Expense{}, fmt.Errorf("%w: nobody to split with", models.ErrInvalidExpense)
	}
	return models.Expense{
		ID:       id,
		Title:    title,
		Amount:   in.Amount,
		Payer:    in.Payer,
		Involved: append([]string(nil), involved...),
		Date:     now.UTC().Format(time.RFC3339),
	}, nil
}

// DeleteExpense removes the expense with the given id from the document.
func DeleteExpense(doc *models.TripDocument, id string) bool {
	for i := range doc.Expenses {
		if doc.Expenses[i].ID == id {
			doc.Expenses = append(doc.Expenses[:i], doc.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

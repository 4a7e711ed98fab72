package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Transfer is one payment of a settle-up plan.
type Transfer struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type position struct {
	name   string
	amount decimal.Decimal
}

// cent is the smallest amount worth transferring.
var cent = decimal.New(1, -2)

// Settle proposes payments that bring every balance back to zero. The largest
// debtor always pays the largest creditor; equal amounts are ordered by name.
// Amounts are rounded to cents.
func Settle(balances map[string]float64) []Transfer {
	var debtors, creditors []*position
	for name, v := range balances {
		amt := decimal.NewFromFloat(v).Round(2)
		switch {
		case amt.GreaterThanOrEqual(cent):
			creditors = append(creditors, &position{name: name, amount: amt})
		case amt.LessThanOrEqual(cent.Neg()):
			debtors = append(debtors, &position{name: name, amount: amt.Neg()})
		}
	}

	var out []Transfer
	for len(debtors) > 0 && len(creditors) > 0 {
		sortPositions(debtors)
		sortPositions(creditors)
		d, c := debtors[0], creditors[0]

		pay := decimal.Min(d.amount, c.amount)
		out = append(out, Transfer{From: d.name, To: c.name, Amount: pay.InexactFloat64()})
		d.amount = d.amount.Sub(pay)
		c.amount = c.amount.Sub(pay)

		if d.amount.LessThan(cent) {
			debtors = debtors[1:]
		}
		if c.amount.LessThan(cent) {
			creditors = creditors[1:]
		}
	}
	return out
}

func sortPositions(ps []*position) {
	sort.SliceStable(ps, func(i, j int) bool {
		if c := ps[i].amount.Cmp(ps[j].amount); c != 0 {
			return c > 0
		}
		return ps[i].name < ps[j].name
	})
}

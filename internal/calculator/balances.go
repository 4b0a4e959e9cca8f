package calculator

import (
	"sort"

	"github.com/mmynk/splitledger/internal/money"
)

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	PayerID string
	Amount  money.Cents
	Shares  []ShareForBalance
}

// ShareForBalance is one member's persisted share of an expense.
type ShareForBalance struct {
	MemberID string
	Amount   money.Cents
}

// SettlementForBalance represents a settlement with the minimal information needed for balance calculations.
type SettlementForBalance struct {
	FromUserID string // Who paid (debtor settling up)
	ToUserID   string // Who received (creditor being paid)
	Amount     money.Cents
}

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	MemberID  string
	TotalPaid money.Cents // Expenses fronted plus settlements paid out
	TotalOwed money.Cents // Expense shares plus settlements received
}

// NetCents is positive when the group owes this member, negative when the member owes the group.
func (b MemberBalance) NetCents() money.Cents {
	return b.TotalPaid - b.TotalOwed
}

// Net renders the net balance with exactly two fractional digits.
func (b MemberBalance) Net() string {
	return b.NetCents().String()
}

// DebtEdge represents a debt from one person to another.
type DebtEdge struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount money.Cents
}

// ComputeBalances folds a group's expenses and settlements into one balance per member.
//
// Algorithm:
//   - Every current member starts at zero, so members with no activity still appear
//   - For each expense: payer contributed +amount, each share member owes their share
//   - For each settlement: the payer's balance improves, the receiver's balance decreases
//   - net_balance = total_paid - total_owed
//
// Members are returned in the given order. IDs that only appear in records
// (no longer members) are appended in ascending order.
func ComputeBalances(members []string, expenses []ExpenseForBalance, settlements []SettlementForBalance) []MemberBalance {
	balances := make(map[string]*MemberBalance, len(members))
	order := make([]string, 0, len(members))

	get := func(id string) *MemberBalance {
		if b, ok := balances[id]; ok {
			return b
		}
		b := &MemberBalance{MemberID: id}
		balances[id] = b
		return b
	}

	for _, m := range members {
		if _, exists := balances[m]; exists {
			continue
		}
		get(m)
		order = append(order, m)
	}
	current := make(map[string]bool, len(order))
	for _, m := range order {
		current[m] = true
	}

	for _, e := range expenses {
		get(e.PayerID).TotalPaid += e.Amount
		for _, share := range e.Shares {
			get(share.MemberID).TotalOwed += share.Amount
		}
	}

	for _, s := range settlements {
		get(s.FromUserID).TotalPaid += s.Amount
		get(s.ToUserID).TotalOwed += s.Amount
	}

	var extra []string
	for id := range balances {
		if !current[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	order = append(order, extra...)

	result := make([]MemberBalance, len(order))
	for i, id := range order {
		result[i] = *balances[id]
	}
	return result
}

// SumNet returns the sum of all net balances. It is zero for any ledger whose
// expense shares add up to their expense amounts.
func SumNet(balances []MemberBalance) money.Cents {
	var total money.Cents
	for _, b := range balances {
		total += b.NetCents()
	}
	return total
}

// SimplifyDebts turns net balances into a short list of payments that would
// settle the group. Debtors and creditors are matched greedily, largest
// amounts first, ties broken by ascending member ID.
func SimplifyDebts(balances []MemberBalance) []DebtEdge {
	type party struct {
		id     string
		amount money.Cents
	}

	var creditors, debtors []party
	for _, b := range balances {
		switch net := b.NetCents(); {
		case net > 0:
			creditors = append(creditors, party{id: b.MemberID, amount: net})
		case net < 0:
			debtors = append(debtors, party{id: b.MemberID, amount: -net})
		}
	}

	byAmount := func(ps []party) {
		sort.Slice(ps, func(i, j int) bool {
			if ps[i].amount != ps[j].amount {
				return ps[i].amount > ps[j].amount
			}
			return ps[i].id < ps[j].id
		})
	}
	byAmount(creditors)
	byAmount(debtors)

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := min(debtors[i].amount, creditors[j].amount)
		edges = append(edges, DebtEdge{
			From:   debtors[i].id,
			To:     creditors[j].id,
			Amount: amount,
		})

		debtors[i].amount -= amount
		creditors[j].amount -= amount

		if debtors[i].amount == 0 {
			i++
		}
		if creditors[j].amount == 0 {
			j++
		}
	}
	return edges
}

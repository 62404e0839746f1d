// Package balance turns raw split rows into aggregate balances, pairwise
// debt breakdowns and settlement suggestions. Everything here is pure
// read-time computation over a snapshot of rows; nothing is cached and
// nothing is written.
package balance

import (
	"math"
	"sort"
)

// epsilon is the threshold below which a net position counts as settled.
const epsilon = 0.01

// ComputeSummary aggregates a user's split rows into totals. Self-loop rows
// (user owing themselves) contribute to neither side.
func ComputeSummary(userID string, rows []SplitRow) Summary {
	var summary Summary
	for _, row := range rows {
		if row.UserID == row.OwedTo {
			continue
		}
		switch {
		case row.UserID == userID:
			summary.TotalOwedByUser += row.Amount
		case row.OwedTo == userID:
			summary.TotalOwedToUser += row.Amount
		}
	}
	summary.NetBalance = round2(summary.TotalOwedToUser - summary.TotalOwedByUser)
	summary.TotalOwedByUser = round2(summary.TotalOwedByUser)
	summary.TotalOwedToUser = round2(summary.TotalOwedToUser)
	return summary
}

// BreakdownDebts groups a user's split rows by counterparty and nets
// opposing obligations into one signed total per counterparty: positive
// means the user owes them, negative means they owe the user.
//
// Rows where the user is the debtor add to the total and appear as-is in
// the detail list. Rows where the user is the creditor subtract, and their
// detail entry carries a negated amount with a "Paid by me: " description
// prefix. Settlements flow through the same subtraction path, which is what
// cancels a prior debt.
//
// With includeSettled false, counterparties whose net position is within
// epsilon of zero are dropped; with true, every counterparty that has any
// history is reported. Detail entries are sorted by expense date (stable,
// so same-day entries keep source order); items are sorted by counterparty
// ID for deterministic output.
func BreakdownDebts(userID string, rows []SplitRow, includeSettled bool) []DebtItem {
	perCounterparty := make(map[string]*DebtItem)
	var order []string

	for _, row := range rows {
		if row.UserID == row.OwedTo {
			continue
		}

		userOwes := row.UserID == userID
		if !userOwes && row.OwedTo != userID {
			continue
		}

		otherID := row.OwedTo
		if !userOwes {
			otherID = row.UserID
		}

		item, ok := perCounterparty[otherID]
		if !ok {
			item = &DebtItem{Counterparty: row.Counterparty}
			perCounterparty[otherID] = item
			order = append(order, otherID)
		}

		if userOwes {
			item.TotalAmount += row.Amount
			item.Expenses = append(item.Expenses, DebtDetail{
				ExpenseID:   row.ExpenseID,
				Description: row.Description,
				Date:        row.Date,
				Amount:      row.Amount,
			})
			if item.CommonGroupID == nil && row.GroupID != nil {
				item.CommonGroupID = row.GroupID
			}
		} else {
			item.TotalAmount -= row.Amount
			item.Expenses = append(item.Expenses, DebtDetail{
				ExpenseID:   row.ExpenseID,
				Description: "Paid by me: " + row.Description,
				Date:        row.Date,
				Amount:      -row.Amount,
			})
		}
	}

	items := make([]DebtItem, 0, len(order))
	for _, otherID := range order {
		item := perCounterparty[otherID]
		item.TotalAmount = round2(item.TotalAmount)
		if !includeSettled && math.Abs(item.TotalAmount) <= epsilon {
			continue
		}
		sort.SliceStable(item.Expenses, func(i, j int) bool {
			return item.Expenses[i].Date.Before(item.Expenses[j].Date)
		})
		items = append(items, *item)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Counterparty.ID < items[j].Counterparty.ID
	})

	return items
}

// ComputeGroupBalances nets a group's split rows into one position per
// member and suggests a minimal set of transfers that settles the group.
// Member nets always sum to zero (every split credits one member exactly
// what it debits another).
func ComputeGroupBalances(rows []GroupSplitRow, names map[string]*string) ([]MemberBalance, []Transfer) {
	nets := make(map[string]float64)
	for _, row := range rows {
		if row.UserID == row.OwedTo {
			continue
		}
		nets[row.UserID] -= row.Amount
		nets[row.OwedTo] += row.Amount
	}

	members := make([]MemberBalance, 0, len(nets))
	for userID, net := range nets {
		members = append(members, MemberBalance{
			UserID:   userID,
			FullName: names[userID],
			Net:      round2(net),
		})
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].UserID < members[j].UserID
	})

	return members, suggestTransfers(members)
}

// suggestTransfers greedily matches debtors with creditors. Largest debts
// pair with largest credits first, so the transfer count is at most
// (members - 1).
func suggestTransfers(members []MemberBalance) []Transfer {
	var debtors, creditors []MemberBalance
	for _, m := range members {
		if m.Net < -epsilon {
			debtors = append(debtors, m)
		} else if m.Net > epsilon {
			creditors = append(creditors, m)
		}
	}

	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].Net != debtors[j].Net {
			return debtors[i].Net < debtors[j].Net
		}
		return debtors[i].UserID < debtors[j].UserID
	})
	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].Net != creditors[j].Net {
			return creditors[i].Net > creditors[j].Net
		}
		return creditors[i].UserID < creditors[j].UserID
	})

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		owed := -debtors[i].Net
		due := creditors[j].Net

		amount := math.Min(owed, due)
		if amount > epsilon {
			transfers = append(transfers, Transfer{
				FromUserID: debtors[i].UserID,
				ToUserID:   creditors[j].UserID,
				Amount:     round2(amount),
			})
		}

		debtors[i].Net += amount
		creditors[j].Net -= amount

		if -debtors[i].Net <= epsilon {
			i++
		}
		if creditors[j].Net <= epsilon {
			j++
		}
	}

	return transfers
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

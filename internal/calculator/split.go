package calculator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/money"
)

// SplitType selects how an expense total is divided.
type SplitType string

const (
	SplitEqual   SplitType = "EQUAL"
	SplitPercent SplitType = "PERCENT"
	SplitCustom  SplitType = "CUSTOM"
)

// percentPrecision is the number of fractional digits kept when computing
// a member's exact proportional share before flooring to whole cents.
const percentPrecision = 10

var hundred = decimal.NewFromInt(100)

// ParseSplitType normalizes a split type string. An empty string means EQUAL.
func ParseSplitType(s string) (SplitType, error) {
	switch t := SplitType(strings.ToUpper(strings.TrimSpace(s))); t {
	case "":
		return SplitEqual, nil
	case SplitEqual, SplitPercent, SplitCustom:
		return t, nil
	default:
		return "", fmt.Errorf("%w: unknown split type %q", ErrValidation, s)
	}
}

// ShareLine carries one member's parameter for a PERCENT or CUSTOM split.
// Only the field matching the policy type is read.
type ShareLine struct {
	MemberID string
	Percent  decimal.NullDecimal
	Amount   decimal.NullDecimal
}

// SplitPolicy describes how to divide a total. EQUAL takes no share lines.
type SplitPolicy struct {
	Type   SplitType
	Shares []ShareLine
}

// Allocation maps member ID to the cents that member owes.
type Allocation map[string]money.Cents

// Sum returns the total of all shares.
func (a Allocation) Sum() money.Cents {
	var total money.Cents
	for _, c := range a {
		total += c
	}
	return total
}

// Members returns the allocated member IDs in ascending order.
func (a Allocation) Members() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Allocate partitions totalCents among members according to policy.
//
// The result always sums to totalCents exactly and only contains members of
// the given set. Distribution of leftover cents is deterministic:
//   - EQUAL: every member gets total/n, the first total%n members in ascending
//     ID order get one extra cent.
//   - PERCENT: each member gets floor(total × pct / 100); leftover cents go to
//     the largest fractional remainders, ties broken by ascending ID.
//   - CUSTOM: the caller supplies every share; they must add up to the total.
//
// On failure no allocation is returned.
func Allocate(totalCents money.Cents, policy SplitPolicy, members []string) (Allocation, error) {
	if totalCents < 0 {
		return nil, fmt.Errorf("%w: total %s must not be negative", money.ErrInvalidAmount, totalCents)
	}

	eligible, err := memberSet(members)
	if err != nil {
		return nil, err
	}
	if len(eligible) == 0 {
		return nil, ErrEmptyMemberSet
	}

	var alloc Allocation
	switch policy.Type {
	case SplitEqual:
		if len(policy.Shares) > 0 {
			return nil, fmt.Errorf("%w: shares are not accepted for %s split", ErrValidation, SplitEqual)
		}
		alloc = allocateEqual(totalCents, eligible)
	case SplitPercent:
		if err := checkShareLines(policy, eligible); err != nil {
			return nil, err
		}
		alloc, err = allocatePercent(totalCents, policy.Shares)
	case SplitCustom:
		if err := checkShareLines(policy, eligible); err != nil {
			return nil, err
		}
		alloc, err = allocateCustom(totalCents, policy.Shares)
	default:
		return nil, fmt.Errorf("%w: unknown split type %q", ErrValidation, policy.Type)
	}
	if err != nil {
		return nil, err
	}

	// No penny lost.
	if sum := alloc.Sum(); sum != totalCents {
		return nil, fmt.Errorf("allocation sums to %d cents, want %d", sum, totalCents)
	}
	return alloc, nil
}

func allocateEqual(totalCents money.Cents, eligible map[string]struct{}) Allocation {
	sorted := sortedKeys(eligible)
	n := money.Cents(len(sorted))
	base := totalCents / n
	remainder := totalCents % n

	alloc := make(Allocation, len(sorted))
	for i, id := range sorted {
		share := base
		if money.Cents(i) < remainder {
			share++
		}
		alloc[id] = share
	}
	return alloc
}

func allocatePercent(totalCents money.Cents, lines []ShareLine) (Allocation, error) {
	sumPercent := decimal.Zero
	for _, line := range lines {
		if !line.Percent.Valid {
			return nil, fmt.Errorf("%w: member %s has no percent", ErrValidation, line.MemberID)
		}
		pct := line.Percent.Decimal
		if pct.IsNegative() {
			return nil, fmt.Errorf("%w: member %s has negative percent %s", ErrValidation, line.MemberID, pct)
		}
		if !pct.Shift(money.Scale).IsInteger() {
			return nil, fmt.Errorf("%w: percent %s for member %s has more than %d decimal places",
				ErrValidation, pct, line.MemberID, money.Scale)
		}
		sumPercent = sumPercent.Add(pct)
	}
	if !sumPercent.Equal(hundred) {
		return nil, fmt.Errorf("%w: percents must sum to exactly 100.00, got %s",
			ErrValidation, sumPercent.StringFixed(money.Scale))
	}

	type portion struct {
		memberID string
		floor    money.Cents
		fraction decimal.Decimal
	}

	total := decimal.NewFromInt(int64(totalCents))
	portions := make([]portion, 0, len(lines))
	var sumFloors money.Cents
	for _, line := range lines {
		exact := total.Mul(line.Percent.Decimal).DivRound(hundred, percentPrecision)
		floor := exact.Floor()
		p := portion{
			memberID: line.MemberID,
			floor:    money.Cents(floor.IntPart()),
			fraction: exact.Sub(floor),
		}
		portions = append(portions, p)
		sumFloors += p.floor
	}

	// Largest remainder first, ties by ascending member ID.
	sort.Slice(portions, func(i, j int) bool {
		if cmp := portions[i].fraction.Cmp(portions[j].fraction); cmp != 0 {
			return cmp > 0
		}
		return portions[i].memberID < portions[j].memberID
	})

	alloc := make(Allocation, len(portions))
	for _, p := range portions {
		alloc[p.memberID] = p.floor
	}
	leftover := totalCents - sumFloors
	for i := money.Cents(0); i < leftover; i++ {
		alloc[portions[int(i)%len(portions)].memberID]++
	}
	return alloc, nil
}

func allocateCustom(totalCents money.Cents, lines []ShareLine) (Allocation, error) {
	alloc := make(Allocation, len(lines))
	var sum money.Cents
	for _, line := range lines {
		if !line.Amount.Valid {
			return nil, fmt.Errorf("%w: member %s has no amount", ErrValidation, line.MemberID)
		}
		cents, err := money.ToCents(line.Amount.Decimal)
		if err != nil {
			return nil, fmt.Errorf("member %s: %w", line.MemberID, err)
		}
		if cents < 0 {
			return nil, fmt.Errorf("%w: member %s has negative amount %s", ErrValidation, line.MemberID, cents)
		}
		alloc[line.MemberID] = cents
		sum += cents
	}
	if sum != totalCents {
		return nil, fmt.Errorf("%w: custom shares do not sum to total amount: expected=%d actual=%d cents",
			ErrValidation, totalCents, sum)
	}
	return alloc, nil
}

// checkShareLines enforces that share lines exist, reference only eligible
// members and name each member at most once.
func checkShareLines(policy SplitPolicy, eligible map[string]struct{}) error {
	if len(policy.Shares) == 0 {
		return fmt.Errorf("%w: shares required for %s split", ErrValidation, policy.Type)
	}
	seen := make(map[string]bool, len(policy.Shares))
	for _, line := range policy.Shares {
		if line.MemberID == "" {
			return fmt.Errorf("%w: share line without member", ErrValidation)
		}
		if _, ok := eligible[line.MemberID]; !ok {
			return fmt.Errorf("%w: %s is not a member of the group", ErrValidation, line.MemberID)
		}
		if seen[line.MemberID] {
			return fmt.Errorf("%w: member %s appears more than once", ErrValidation, line.MemberID)
		}
		seen[line.MemberID] = true
	}
	return nil
}

func memberSet(members []string) (map[string]struct{}, error) {
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == "" {
			return nil, fmt.Errorf("%w: blank member id", ErrValidation)
		}
		set[m] = struct{}{}
	}
	return set, nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

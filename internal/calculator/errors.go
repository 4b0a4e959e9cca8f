package calculator

import "errors"

var (
	// ErrValidation reports a split policy that breaks its contract: percents
	// not summing to 100, custom amounts not summing to the total, missing
	// per-member values or references to non-members.
	ErrValidation = errors.New("invalid split")

	// ErrEmptyMemberSet is returned when an allocation is requested against
	// zero eligible members.
	ErrEmptyMemberSet = errors.New("member set is empty")
)

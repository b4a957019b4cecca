package models

import "regexp"

// addressPattern matches the shape of a Stellar account strkey: a 'G' version
// prefix followed by 55 base32 characters.
var addressPattern = regexp.MustCompile(`^G[A-Z2-7]{55}$`)

// Address identifies a ledger account. The registry only ever compares
// addresses for equality.
type Address string

// Equal reports whether a and other identify the same account.
func (a Address) Equal(other Address) bool {
	return a == other
}

// IsZero reports whether the address is unset.
func (a Address) IsZero() bool {
	return a == ""
}

func (a Address) String() string {
	return string(a)
}

// IsValidAddress reports whether s has the shape of an account address.
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

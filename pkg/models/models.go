package models

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Account is the canonical form of an address: 0x-prefixed lowercase hex.
type Account string

// NoRecipient stands in for the missing recipient of a contract creation.
// It is distinct from the zero address so burns and creations never share a node.
const NoRecipient Account = "none"

// AccountFromAddress converts a go-ethereum address into its canonical form.
func AccountFromAddress(addr common.Address) Account {
	return Account(strings.ToLower(addr.Hex()))
}

// ParseAccount validates and normalizes a user supplied address string.
func ParseAccount(s string) (Account, bool) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return "", false
	}
	return AccountFromAddress(common.HexToAddress(s)), true
}

// Normalize lowercases an account so lookups ignore checksum casing.
func (a Account) Normalize() Account {
	return Account(strings.ToLower(strings.TrimSpace(string(a))))
}

func (a Account) String() string {
	return string(a)
}

// TransactionRecord holds one transfer that touches the target address.
type TransactionRecord struct {
	From        Account
	To          Account
	Value       *uint256.Int // wei
	Hash        string
	BlockNumber uint64
	Nonce       uint64
	GasLimit    uint64
}

// IsCreation reports whether the transaction deployed a contract.
func (r TransactionRecord) IsCreation() bool {
	return r.To == NoRecipient
}

// Touches reports whether the account is the sender or the recipient.
func (r TransactionRecord) Touches(a Account) bool {
	a = a.Normalize()
	return r.From == a || r.To == a
}

// ScanRange is the block interval walked by the scanner, Latest inclusive.
type ScanRange struct {
	Latest uint64
	Count  uint64
}

// Lowest returns the oldest height in the range. Callers must ensure Count > 0.
func (r ScanRange) Lowest() uint64 {
	return r.Latest - r.Count + 1
}

// Heights lists the range from Latest down to Lowest.
func (r ScanRange) Heights() []uint64 {
	heights := make([]uint64, 0, r.Count)
	for i := uint64(0); i < r.Count; i++ {
		heights = append(heights, r.Latest-i)
	}
	return heights
}

package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsWallet reports whether s names a wallet: a hex address or an ENS name
func IsWallet(s string) bool {
	if s == "" {
		return false
	}
	if IsENSName(s) {
		return len(s) > len(ENSSuffix)
	}
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// IsENSName reports whether s ends in the ENS suffix
func IsENSName(s string) bool {
	return strings.HasSuffix(strings.ToLower(s), ENSSuffix)
}

// ShortenAddress renders 0x1234567890...abcd as 0x1234...abcd
func ShortenAddress(address string) string {
	if !strings.HasPrefix(address, "0x") || len(address) < 42 {
		return address
	}
	return address[:6] + "..." + address[38:]
}

package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// NameHash computes the EIP-137 node of an ENS name.
// Labels are lowercased; full UTS-46 normalization is not applied.
func NameHash(name string) [32]byte {
	var node [32]byte

	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return node
	}

	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		labelHash := crypto.Keccak256([]byte(labels[i]))
		copy(node[:], crypto.Keccak256(node[:], labelHash))
	}

	return node
}

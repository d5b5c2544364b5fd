package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthClient is the read-only slice of an Ethereum RPC client the bot uses:
// contract calls for ownerOf and ENS, and the chain id checked at startup
//
//go:generate mockgen -source=ethclient.go -destination=../mocks/ethclient.go -package=mocks -mock_names=EthClient=MockEthClient,EthClientDialer=MockEthClientDialer
type EthClient interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	ChainID(ctx context.Context) (*big.Int, error)
	Close()
}

// EthClientDialer opens an EthClient
type EthClientDialer interface {
	Dial(ctx context.Context, rawurl string) (EthClient, error)
}

type rpcDialer struct{}

// NewEthClientDialer returns a dialer for JSON-RPC endpoints (http, ws or ipc)
func NewEthClientDialer() EthClientDialer {
	return rpcDialer{}
}

func (rpcDialer) Dial(ctx context.Context, rawurl string) (EthClient, error) {
	return ethclient.DialContext(ctx, rawurl)
}

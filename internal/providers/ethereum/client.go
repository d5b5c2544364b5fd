package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/feral-file/ff-artbot/internal/adapter"
	"github.com/feral-file/ff-artbot/internal/logger"
)

// DefaultENSRegistry is the ENS registry address on mainnet
const DefaultENSRegistry = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"

const (
	registryABIJSON = `[{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`
	resolverABIJSON = `[{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"addr","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"},{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"name","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}]`
	erc721ABIJSON   = `[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`
)

var (
	registryABI = mustParseABI(registryABIJSON)
	resolverABI = mustParseABI(resolverABIJSON)
	erc721ABI   = mustParseABI(erc721ABIJSON)
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return parsed
}

// EthereumClient reads ENS records and token ownership from an Ethereum node
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// ResolveENS returns the address of an ENS name, or an empty string when it has none
	ResolveENS(ctx context.Context, name string) (string, error)

	// LookupENS returns the primary ENS name of an address, or an empty string when it has none.
	// The name is only returned when it resolves back to the address.
	LookupENS(ctx context.Context, address string) (string, error)

	// ERC721OwnerOf fetches the current owner of an ERC721 token
	ERC721OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	client   adapter.EthClient
	registry common.Address
}

// NewClient creates a client reading the ENS registry at registryAddress
func NewClient(client adapter.EthClient, registryAddress string) EthereumClient {
	if registryAddress == "" {
		registryAddress = DefaultENSRegistry
	}
	return &ethereumClient{client: client, registry: common.HexToAddress(registryAddress)}
}

// ResolveENS resolves name through the registry and its resolver
func (c *ethereumClient) ResolveENS(ctx context.Context, name string) (string, error) {
	node := NameHash(name)

	resolver, err := c.resolverOf(ctx, node)
	if err != nil {
		return "", err
	}
	if resolver == (common.Address{}) {
		return "", nil
	}

	var addr common.Address
	if err := c.call(ctx, resolver, resolverABI, "addr", &addr, node); err != nil {
		return "", err
	}
	if addr == (common.Address{}) {
		return "", nil
	}

	return addr.Hex(), nil
}

// LookupENS reads the reverse record of address and checks it forward-resolves
func (c *ethereumClient) LookupENS(ctx context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address: %s", address)
	}
	addr := common.HexToAddress(address)

	node := NameHash(fmt.Sprintf("%x.addr.reverse", addr.Bytes()))

	resolver, err := c.resolverOf(ctx, node)
	if err != nil {
		return "", err
	}
	if resolver == (common.Address{}) {
		return "", nil
	}

	var name string
	if err := c.call(ctx, resolver, resolverABI, "name", &name, node); err != nil {
		return "", err
	}
	if name == "" {
		return "", nil
	}

	forward, err := c.ResolveENS(ctx, name)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(forward, addr.Hex()) {
		logger.DebugCtx(ctx, "Reverse ENS record does not resolve back",
			zap.String("address", addr.Hex()),
			zap.String("name", name),
		)
		return "", nil
	}

	return name, nil
}

// ERC721OwnerOf fetches the current owner of an ERC721 token
func (c *ethereumClient) ERC721OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error) {
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok {
		return "", fmt.Errorf("invalid token number: %s", tokenNumber)
	}

	var owner common.Address
	if err := c.call(ctx, common.HexToAddress(contractAddress), erc721ABI, "ownerOf", &owner, tokenID); err != nil {
		return "", err
	}

	return owner.Hex(), nil
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}

func (c *ethereumClient) resolverOf(ctx context.Context, node [32]byte) (common.Address, error) {
	var resolver common.Address
	if err := c.call(ctx, c.registry, registryABI, "resolver", &resolver, node); err != nil {
		return common.Address{}, err
	}
	return resolver, nil
}

func (c *ethereumClient) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, out interface{}, args ...interface{}) error {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := c.client.CallContract(ctx, ethereum.CallMsg{
		To:   &to,
		Data: data,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to call contract: %w", err)
	}

	if err := contractABI.UnpackIntoInterface(out, method, result); err != nil {
		return fmt.Errorf("failed to unpack result: %w", err)
	}

	return nil
}

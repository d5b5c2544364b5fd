package ethereum_test

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/logger"
	"github.com/feral-file/ff-artbot/internal/mocks"
	eth "github.com/feral-file/ff-artbot/internal/providers/ethereum"
)

var (
	registry     = common.HexToAddress(eth.DefaultENSRegistry)
	resolverAddr = common.HexToAddress("0x231b0Ee14048e9dCcD1d247744d114a4EB5E8E63")
	owner        = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	core         = common.HexToAddress("0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270")
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func selector(signature string) []byte {
	return crypto.Keccak256([]byte(signature))[:4]
}

func encodeAddress(addr common.Address) []byte {
	return common.LeftPadBytes(addr.Bytes(), 32)
}

func encodeString(t *testing.T, s string) []byte {
	t.Helper()
	stringType, err := abi.NewType("string", "", nil)
	require.NoError(t, err)
	out, err := abi.Arguments{{Type: stringType}}.Pack(s)
	require.NoError(t, err)
	return out
}

// ensChain answers registry and resolver calls for the given records
type ensChain struct {
	t         *testing.T
	forward   map[[32]byte]common.Address
	reverse   map[[32]byte]string
	resolvers map[[32]byte]common.Address
}

func (e *ensChain) call(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	var node [32]byte
	copy(node[:], msg.Data[4:36])

	switch {
	case *msg.To == registry && bytes.Equal(msg.Data[:4], selector("resolver(bytes32)")):
		return encodeAddress(e.resolvers[node]), nil
	case *msg.To == resolverAddr && bytes.Equal(msg.Data[:4], selector("addr(bytes32)")):
		return encodeAddress(e.forward[node]), nil
	case *msg.To == resolverAddr && bytes.Equal(msg.Data[:4], selector("name(bytes32)")):
		return encodeString(e.t, e.reverse[node]), nil
	}
	e.t.Fatalf("unexpected call to %s", msg.To.Hex())
	return nil, nil
}

func TestNameHash(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "", expected: "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{name: "eth", expected: "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{name: "foo.eth", expected: "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
		{name: "FOO.eth", expected: "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := eth.NameHash(tt.name)
			assert.Equal(t, tt.expected, common.BytesToHash(node[:]).Hex())
		})
	}
}

func TestResolveENS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := &ensChain{
		t:         t,
		forward:   map[[32]byte]common.Address{eth.NameHash("snowfro.eth"): owner},
		resolvers: map[[32]byte]common.Address{eth.NameHash("snowfro.eth"): resolverAddr},
	}

	mockEth := mocks.NewMockEthClient(ctrl)
	mockEth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(chain.call).Times(2)

	client := eth.NewClient(mockEth, "")

	addr, err := client.ResolveENS(context.Background(), "Snowfro.eth")
	require.NoError(t, err)
	assert.Equal(t, owner.Hex(), addr)
}

func TestResolveENS_NoResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chain := &ensChain{t: t}

	mockEth := mocks.NewMockEthClient(ctrl)
	mockEth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(chain.call).Times(1)

	client := eth.NewClient(mockEth, eth.DefaultENSRegistry)

	addr, err := client.ResolveENS(context.Background(), "nobody.eth")
	require.NoError(t, err)
	assert.Empty(t, addr)
}

func TestResolveENS_CallError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEth := mocks.NewMockEthClient(ctrl)
	mockEth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, errors.New("rpc down"))

	client := eth.NewClient(mockEth, "")

	_, err := client.ResolveENS(context.Background(), "snowfro.eth")
	assert.ErrorContains(t, err, "failed to call contract")
}

func TestLookupENS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reverseNode := eth.NameHash("8ba1f109551bd432803012645ac136ddd64dba72.addr.reverse")
	chain := &ensChain{
		t:       t,
		forward: map[[32]byte]common.Address{eth.NameHash("snowfro.eth"): owner},
		reverse: map[[32]byte]string{reverseNode: "snowfro.eth"},
		resolvers: map[[32]byte]common.Address{
			reverseNode:                  resolverAddr,
			eth.NameHash("snowfro.eth"): resolverAddr,
		},
	}

	mockEth := mocks.NewMockEthClient(ctrl)
	mockEth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(chain.call).Times(4)

	client := eth.NewClient(mockEth, "")

	name, err := client.LookupENS(context.Background(), owner.Hex())
	require.NoError(t, err)
	assert.Equal(t, "snowfro.eth", name)
}

func TestLookupENS_MismatchedForwardRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reverseNode := eth.NameHash("8ba1f109551bd432803012645ac136ddd64dba72.addr.reverse")
	chain := &ensChain{
		t:       t,
		forward: map[[32]byte]common.Address{eth.NameHash("impostor.eth"): core},
		reverse: map[[32]byte]string{reverseNode: "impostor.eth"},
		resolvers: map[[32]byte]common.Address{
			reverseNode:                   resolverAddr,
			eth.NameHash("impostor.eth"): resolverAddr,
		},
	}

	mockEth := mocks.NewMockEthClient(ctrl)
	mockEth.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(chain.call).Times(4)

	client := eth.NewClient(mockEth, "")

	name, err := client.LookupENS(context.Background(), owner.Hex())
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestLookupENS_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := eth.NewClient(mocks.NewMockEthClient(ctrl), "")

	_, err := client.LookupENS(context.Background(), "not-an-address")
	assert.Error(t, err)
}

func TestERC721OwnerOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEth := mocks.NewMockEthClient(ctrl)
	mockEth.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			assert.Equal(t, core, *msg.To)
			assert.Equal(t, selector("ownerOf(uint256)"), msg.Data[:4])
			assert.Equal(t, big.NewInt(78000007), new(big.Int).SetBytes(msg.Data[4:36]))
			return encodeAddress(owner), nil
		})

	client := eth.NewClient(mockEth, "")

	got, err := client.ERC721OwnerOf(context.Background(), core.Hex(), "78000007")
	require.NoError(t, err)
	assert.Equal(t, owner.Hex(), got)
}

func TestERC721OwnerOf_InvalidTokenNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := eth.NewClient(mocks.NewMockEthClient(ctrl), "")

	_, err := client.ERC721OwnerOf(context.Background(), core.Hex(), "abc")
	assert.ErrorContains(t, err, "invalid token number")
}

func TestClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEth := mocks.NewMockEthClient(ctrl)
	mockEth.EXPECT().Close()

	eth.NewClient(mockEth, "").Close()
}

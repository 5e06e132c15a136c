package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/sync/errgroup"
)

// MaxStyles bounds the styles(i) scan
const MaxStyles = 64

// Caller is the read-only part of an RPC client; *ethclient.Client satisfies it
type Caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Reader performs read-only calls against collection contracts
type Reader struct {
	caller  Caller
	chainID int64
	timeout time.Duration
	abi     abi.ABI
}

// Dial connects to a JSON-RPC endpoint
func Dial(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	if rpcURL == "" {
		return nil, ErrNotConfigured
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}
	return client, nil
}

// NewReader builds a reader. A nil caller makes every read fail with ErrNotConfigured.
func NewReader(caller Caller, chainID int64, timeout time.Duration) *Reader {
	parsed, err := abi.JSON(strings.NewReader(collectionABI))
	if err != nil {
		panic(fmt.Sprintf("chain: invalid collection abi: %v", err))
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Reader{caller: caller, chainID: chainID, timeout: timeout, abi: parsed}
}

func (r *Reader) ChainID() int64 {
	return r.chainID
}

// ReadCollection reads name, symbol, totalSupply and config concurrently,
// then scans styles(i) until the contract reverts or MaxStyles is reached.
func (r *Reader) ReadCollection(ctx context.Context, address string) (*CollectionInfo, error) {
	if !common.IsHexAddress(address) {
		return nil, ErrInvalidAddress
	}
	if r.caller == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	contract := common.HexToAddress(address)
	info := &CollectionInfo{Address: contract.Hex(), ChainID: r.chainID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := r.call(gctx, contract, "name")
		if err != nil {
			return err
		}
		info.Name = out[0].(string)
		return nil
	})
	g.Go(func() error {
		out, err := r.call(gctx, contract, "symbol")
		if err != nil {
			return err
		}
		info.Symbol = out[0].(string)
		return nil
	})
	g.Go(func() error {
		out, err := r.call(gctx, contract, "totalSupply")
		if err != nil {
			return err
		}
		info.TotalSupply = out[0].(*big.Int).String()
		return nil
	})
	g.Go(func() error {
		out, err := r.call(gctx, contract, "config")
		if err != nil {
			return err
		}
		info.Config = CollectionConfig{
			ProductType: productType(out[0].(uint8)),
			PriceWei:    out[1].(*big.Int).String(),
			MaxSupply:   out[2].(uint32),
			Creator:     out[4].(common.Address).Hex(),
			Registry:    out[5].(common.Address).Hex(),
		}
		if info.Config.ProductType == ProductBlindbox {
			info.Config.UnrevealedURI = out[3].(string)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	info.Styles = r.readStyles(ctx, contract)
	return info, nil
}

// readStyles stops at the first failing index; a revert marks the end of the array
func (r *Reader) readStyles(ctx context.Context, contract common.Address) []Style {
	styles := make([]Style, 0)
	for i := 0; i < MaxStyles; i++ {
		out, err := r.call(ctx, contract, "styles", big.NewInt(int64(i)))
		if err != nil {
			break
		}
		styles = append(styles, Style{
			Index:     i,
			WeightBp:  out[0].(uint16),
			MaxSupply: out[1].(uint32),
			Minted:    out[2].(uint32),
			BaseURI:   out[3].(string),
		})
	}
	return styles
}

func (r *Reader) call(ctx context.Context, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	input, err := r.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}

	raw, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: input}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", method, err)
	}

	out, err := r.abi.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	return out, nil
}

package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var DefaultTimeout = 30 * time.Second

// Client issues chain queries against a single node provider. http(s) and
// ws(s) endpoints are both accepted. Every call is bounded by the timeout.
type Client struct {
	url     string
	eth     *ethclient.Client
	timeout time.Duration
}

// Dial connects to the endpoint. A non-positive timeout uses DefaultTimeout.
func Dial(ctx context.Context, url string, timeout time.Duration) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("rpc url is empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	eth, err := ethclient.DialContext(dialCtx, url)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Client{url: url, eth: eth, timeout: timeout}, nil
}

func (c *Client) URL() string {
	return c.url
}

// ChainID returns the chain id reported by the node.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.eth.ChainID(ctx)
}

// BlockNumber returns the current head height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.eth.BlockNumber(ctx)
}

// BlockByNumber fetches a block with full transaction bodies.
// A block the node does not know is reported as ethereum.NotFound.
func (c *Client) BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.eth.BlockByNumber(ctx, number)
}

// Latency measures a round trip to the node.
func (c *Client) Latency(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	if _, err := c.BlockNumber(ctx); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

func (c *Client) Close() {
	c.eth.Close()
}

// Package scanner walks the most recent blocks of a chain and collects the
// transactions that touch a target address.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"txgraph/pkg/graph"
	"txgraph/pkg/models"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// ChainSource is the node provider the scanner reads from.
// *rpc.Client and *ethclient.Client both satisfy it.
type ChainSource interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number *big.Int) (*types.Block, error)
}

// Result is the outcome of a successful scan.
type Result struct {
	Target  models.Account
	Range   models.ScanRange
	Records []models.TransactionRecord
	Graph   *graph.Graph
}

// Scanner fetches blocks one at a time, newest first.
type Scanner struct {
	source ChainSource
	logger *slog.Logger
}

// New creates a Scanner. A nil logger discards progress output.
func New(source ChainSource, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{source: source, logger: logger}
}

// Scan walks blockCount blocks ending at the current head. Any failure aborts
// the whole scan; no partial result is returned.
func (s *Scanner) Scan(ctx context.Context, target string, blockCount uint64) (*Result, error) {
	account, ok := models.ParseAccount(target)
	if !ok {
		return nil, scanErr(ErrInvalidAddress, 0, fmt.Errorf("%q is not a 20-byte hex address", target))
	}

	latest, err := s.source.BlockNumber(ctx)
	if err != nil {
		return nil, scanErr(ErrUnreachable, 0, fmt.Errorf("get block number: %w", err))
	}

	// Heights 0..latest exist, so at most latest+1 blocks can be walked.
	// A count of exactly latest+1 ends at genesis; one more would need a
	// negative height.
	if blockCount == 0 || blockCount > latest+1 {
		return nil, scanErr(ErrInvalidRange, 0, fmt.Errorf("cannot walk %d blocks back from height %d", blockCount, latest))
	}
	rng := models.ScanRange{Latest: latest, Count: blockCount}

	chainID, err := s.source.ChainID(ctx)
	if err != nil {
		return nil, scanErr(ErrUnreachable, 0, fmt.Errorf("get chain id: %w", err))
	}
	signer := types.LatestSignerForChainID(chainID)

	s.logger.Info("scanning blocks",
		"target", account,
		"from", rng.Latest,
		"to", rng.Lowest(),
		"chain_id", chainID)

	var records []models.TransactionRecord
	for _, height := range rng.Heights() {
		block, err := s.source.BlockByNumber(ctx, new(big.Int).SetUint64(height))
		if errors.Is(err, ethereum.NotFound) || (err == nil && block == nil) {
			s.logger.Warn("block not found, skipping", "height", height)
			continue
		}
		if err != nil {
			return nil, scanErr(ErrBlockFetch, height, err)
		}

		matched, err := filterBlock(block, signer, account)
		if err != nil {
			return nil, scanErr(ErrSender, height, err)
		}
		s.logger.Info("fetched block",
			"height", height,
			"txs", len(block.Transactions()),
			"matches", len(matched))
		records = append(records, matched...)
	}

	g := graph.Build(records)
	s.logger.Info("transaction graph created",
		"records", len(records),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount())

	return &Result{Target: account, Range: rng, Records: records, Graph: g}, nil
}

// filterBlock keeps the transactions sent from or to the target, in block order.
func filterBlock(block *types.Block, signer types.Signer, target models.Account) ([]models.TransactionRecord, error) {
	var out []models.TransactionRecord
	for _, tx := range block.Transactions() {
		sender, err := types.Sender(signer, tx)
		if err != nil {
			return nil, fmt.Errorf("tx %s: %w", tx.Hash().Hex(), err)
		}
		rec := toRecord(tx, models.AccountFromAddress(sender), block.NumberU64())
		if rec.From == target || rec.To == target {
			out = append(out, rec)
		}
	}
	return out, nil
}

func toRecord(tx *types.Transaction, from models.Account, blockNumber uint64) models.TransactionRecord {
	to := models.NoRecipient
	if tx.To() != nil {
		to = models.AccountFromAddress(*tx.To())
	}
	value, _ := uint256.FromBig(tx.Value())
	return models.TransactionRecord{
		From:        from,
		To:          to,
		Value:       value,
		Hash:        tx.Hash().Hex(),
		BlockNumber: blockNumber,
		Nonce:       tx.Nonce(),
		GasLimit:    tx.Gas(),
	}
}

package verify

import (
	"bytes"
	"context"
	"runtime"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethverify/headerverify/adapter"
	"github.com/ethverify/headerverify/header"
	"golang.org/x/sync/errgroup"
)

// VerifyChainParallel is a non-core parallel variant: per-block
// verification runs concurrently, bounded by GOMAXPROCS, and the O(m)
// parent-link walk runs sequentially afterward. It returns the same
// answer as AreBlocksAndChainValid; use it when m is large enough that
// per-block RLP/Keccak work dominates wall time.
func (e *Engine) VerifyChainParallel(ctx context.Context, headers []*adapter.ExternalHeader) (bool, error) {
	if len(headers) == 0 {
		return true, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	outcomes := make([]Outcome, len(headers))
	claimedHashes := make([][]byte, len(headers))
	for i, h := range headers {
		i, h := i, h
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			claimed, err := hashBytes(h.BlockHash)
			if err != nil {
				return err
			}
			outcome, err := e.VerifySingle(uint64(h.Number), h, common.BytesToHash(claimed))
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			claimedHashes[i] = claimed
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}

	var prevHash [header.DigestWidth]byte
	for i, h := range headers {
		if outcomes[i] != Valid {
			return false, nil
		}
		if i > 0 {
			parent, err := hashBytes(h.ParentHash)
			if err != nil || !bytes.Equal(parent, prevHash[:]) {
				return false, nil
			}
		}
		copy(prevHash[:], claimedHashes[i])
	}
	return true, nil
}

package gostecc

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mahdiidarabi/gost-ecc/internal/parser"
)

// BatchItem is one signature to check in VerifyBatch.
type BatchItem struct {
	Label     string // free-form, copied into the result
	Digest    []byte
	Signature string // fixed-width hex
	PublicKey *PublicKey
}

// BatchResult is the outcome for the item at Index. Err is set only for
// malformed signature text; a well-formed but wrong signature has Valid
// false and no error.
type BatchResult struct {
	Index int
	Label string
	Valid bool
	Err   error
}

// VerifyBatch verifies items concurrently on up to workers goroutines
// (0 = one per CPU). Results are returned in input order. The returned error
// is non-nil only when ctx is cancelled before every item is checked.
func (s *Signer) VerifyBatch(ctx context.Context, items []BatchItem, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]BatchResult, len(items))
	var valid, malformed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range items {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			item := items[i]
			ok, err := s.VerifyHex(item.Digest, item.Signature, item.PublicKey)
			results[i] = BatchResult{Index: i, Label: item.Label, Valid: ok, Err: err}
			switch {
			case err != nil:
				malformed.Add(1)
			case ok:
				valid.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verify batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("verify batch: %w", err)
	}

	s.logger().Info(ctx, "verified batch",
		"items", len(items),
		"valid", valid.Load(),
		"malformed", malformed.Load(),
		"workers", workers,
	)
	return results, nil
}

// LoadBatch reads signature records from a .json or .csv file and turns them
// into batch items. Records with a message are hashed with the configured
// hash; records without a public key use fallback.
func (s *Signer) LoadBatch(path string, fallback *PublicKey) ([]BatchItem, error) {
	records, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	items := make([]BatchItem, 0, len(records))
	for _, rec := range records {
		item := BatchItem{
			Label:     fmt.Sprintf("%s:%d", path, rec.Line),
			Digest:    rec.Digest,
			Signature: rec.Signature,
			PublicKey: fallback,
		}

		if item.Digest == nil {
			item.Digest, err = s.Digest(rec.Message)
			if err != nil {
				return nil, err
			}
		}

		if rec.PublicKey != nil {
			item.PublicKey, err = s.params.ParsePublicKey(rec.PublicKey)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", item.Label, err)
			}
		}
		if item.PublicKey == nil {
			return nil, makeErrorf(ErrInvalidKey, "%s: no public key in record and none supplied", item.Label)
		}

		items = append(items, item)
	}
	return items, nil
}

// Command headerverify is a local demo CLI around the verify package: it
// reads a JSON fixture of (number, header, claimed hash) records and
// reports verify results, either per record ("verify") or for the records
// as one linked chain ("chain"). It intentionally never dials an
// RPC endpoint, unlike the original cmd/verify_roots and cmd/verify_proof
// — fetching headers over the wire is out of scope here.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethverify/headerverify/adapter"
	"github.com/ethverify/headerverify/config"
	"github.com/ethverify/headerverify/verify"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// fixtureRecord is the on-disk JSON shape: an ExternalHeader plus the hash
// it's claimed to produce.
type fixtureRecord struct {
	Number int64                   `json:"number"`
	Header *adapter.ExternalHeader `json:"header"`
	Hash   string                  `json:"hash"`
}

func loadFixture(path string) ([]fixtureRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("headerverify: reading fixture: %w", err)
	}
	var records []fixtureRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("headerverify: parsing fixture: %w", err)
	}
	return records, nil
}

func newEngine(cliCtx *cli.Context, log *zap.Logger) (*verify.Engine, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, err
	}
	cfg.StrictAdapter = cliCtx.Bool("strict-adapter")
	cfg.ExtraDataMaxBytes = cliCtx.Int("extra-data-max-bytes")
	return verify.New(verify.WithLogger(log), verify.WithConfig(cfg)), nil
}

func runVerify(cliCtx *cli.Context) error {
	log, _ := zap.NewProduction()
	defer log.Sync()
	sugar := log.Sugar()

	records, err := loadFixture(cliCtx.String("fixture"))
	if err != nil {
		return err
	}
	engine, err := newEngine(cliCtx, log)
	if err != nil {
		return err
	}

	failures := 0
	for _, rec := range records {
		claimed := common.HexToHash(rec.Hash)
		outcome, err := engine.VerifySingle(uint64(rec.Number), rec.Header, claimed)
		if err != nil {
			sugar.Errorw("verify failed", "number", rec.Number, "err", err)
			failures++
			continue
		}
		sugar.Infow("verified block", "number", rec.Number, "outcome", outcome.String())
		if outcome != verify.Valid {
			failures++
		}
	}

	if failures > 0 {
		return cli.Exit(fmt.Sprintf("headerverify: %d of %d records failed", failures, len(records)), 1)
	}
	return nil
}

func runChain(cliCtx *cli.Context) error {
	log, _ := zap.NewProduction()
	defer log.Sync()

	records, err := loadFixture(cliCtx.String("fixture"))
	if err != nil {
		return err
	}
	engine, err := newEngine(cliCtx, log)
	if err != nil {
		return err
	}

	headers := make([]*adapter.ExternalHeader, len(records))
	for i, rec := range records {
		rec.Header.BlockHash = rec.Hash
		headers[i] = rec.Header
	}

	if engine.AreBlocksAndChainValid(headers) {
		fmt.Println("chain valid")
		return nil
	}
	return cli.Exit("chain invalid", 1)
}

func fixtureFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "fixture",
			Required: true,
			Usage:    "path to a JSON fixture of header records",
		},
		&cli.BoolFlag{
			Name:  "strict-adapter",
			Usage: "reject absent/ambiguous external-record fields instead of zero-filling",
		},
		&cli.IntFlag{
			Name:  "extra-data-max-bytes",
			Usage: "reject extra_data longer than this many bytes (0 = unbounded)",
		},
	}
}

func main() {
	app := &cli.App{
		Name:  "headerverify",
		Usage: "Ethereum block header RLP/Keccak codec and verification demo",
		Commands: []*cli.Command{
			{
				Name:   "verify",
				Usage:  "verify each header in a fixture against its claimed hash",
				Flags:  fixtureFlags(),
				Action: runVerify,
			},
			{
				Name:   "chain",
				Usage:  "verify a fixture as a linked chain of blocks",
				Flags:  fixtureFlags(),
				Action: runChain,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

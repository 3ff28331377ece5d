package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"

	"github.com/mahdiidarabi/gost-ecc/internal/logging"
	"github.com/mahdiidarabi/gost-ecc/internal/parser"
	"github.com/mahdiidarabi/gost-ecc/pkg/gostecc"
)

// errInvalid reports a signature that failed verification. The verdict has
// already been printed, so run only turns it into a non-zero exit code.
var errInvalid = errors.New("signature invalid")

type options struct {
	params      string
	hash        string
	logLevel    string
	maxAttempts int
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *options) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.params, "params", "test-192", "Domain parameters: YAML file or preset (test-192, secp256k1)")
	fs.StringVar(&opts.hash, "hash", gostecc.DefaultConfig().Hash, "Message hash ("+strings.Join(gostecc.HashNames(), ", ")+")")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.IntVar(&opts.maxAttempts, "max-attempts", gostecc.DefaultConfig().MaxAttempts, "Retry cap for random draws")
	return fs, opts
}

func (o *options) logger(stderr io.Writer) *slog.Logger {
	return logging.TextSlog(stderr, logging.ParseLevel(o.logLevel))
}

func (o *options) signer(stderr io.Writer) (*gostecc.Signer, error) {
	params, err := gostecc.LoadParams(o.params)
	if err != nil {
		return nil, err
	}
	return gostecc.NewSigner(params).
		WithLogger(o.logger(stderr)).
		WithConfig(gostecc.Config{MaxAttempts: o.maxAttempts, Hash: o.hash}), nil
}

// input resolves the digest to sign or verify from -digest or -message.
type input struct {
	message    string
	messageSet bool
	digest     string
}

func (in *input) register(fs *flag.FlagSet) {
	fs.Func("message", "Message to hash with -hash", func(s string) error {
		in.message, in.messageSet = s, true
		return nil
	})
	fs.StringVar(&in.digest, "digest", "", "Precomputed digest in hex (overrides -message)")
}

func (in *input) resolve(signer *gostecc.Signer) ([]byte, error) {
	if in.digest != "" {
		d, err := parser.DecodeHex(in.digest)
		if err != nil {
			return nil, fmt.Errorf("invalid -digest: %w", err)
		}
		return d, nil
	}
	if !in.messageSet {
		return nil, errors.New("-message or -digest is required")
	}
	return signer.Digest([]byte(in.message))
}

func parsePrivateKey(s string) (*gostecc.PrivateKey, error) {
	if s == "" {
		return nil, errors.New("-key is required")
	}
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	d, ok := new(big.Int).SetString(s, 16)
	if !ok || strings.ContainsAny(s, "+-_") {
		return nil, errors.New("invalid -key: want hex")
	}
	return &gostecc.PrivateKey{D: d}, nil
}

func printKeys(w io.Writer, params *gostecc.DomainParams, priv *gostecc.PrivateKey, pub *gostecc.PublicKey) error {
	packed, err := params.MarshalPublicKey(pub)
	if err != nil {
		return err
	}
	if priv != nil {
		fmt.Fprintf(w, "private: %s\n", params.FormatScalar(priv.D))
	}
	fmt.Fprintf(w, "public:  %s\n", hex.EncodeToString(packed))
	return nil
}

func runKeygen(args []string, stdout, stderr io.Writer) error {
	fs, opts := newFlagSet("keygen", stderr)
	bits := fs.Int("bits", 0, "Private key bit size (0 = bit length of n)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	signer, err := opts.signer(stderr)
	if err != nil {
		return err
	}
	params := signer.Params()

	size := *bits
	if size == 0 {
		size = params.N().BitLen()
	}
	priv, err := signer.GeneratePrivateKey(size)
	if err != nil {
		return err
	}
	pub, err := signer.PublicKey(priv)
	if err != nil {
		return err
	}
	return printKeys(stdout, params, priv, pub)
}

func runPubkey(args []string, stdout, stderr io.Writer) error {
	fs, opts := newFlagSet("pubkey", stderr)
	key := fs.String("key", "", "Private key in hex")
	if err := fs.Parse(args); err != nil {
		return err
	}

	priv, err := parsePrivateKey(*key)
	if err != nil {
		return err
	}
	signer, err := opts.signer(stderr)
	if err != nil {
		return err
	}
	pub, err := signer.PublicKey(priv)
	if err != nil {
		return err
	}
	return printKeys(stdout, signer.Params(), nil, pub)
}

func runSign(args []string, stdout, stderr io.Writer) error {
	fs, opts := newFlagSet("sign", stderr)
	key := fs.String("key", "", "Private key in hex")
	var in input
	in.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	priv, err := parsePrivateKey(*key)
	if err != nil {
		return err
	}
	signer, err := opts.signer(stderr)
	if err != nil {
		return err
	}
	digest, err := in.resolve(signer)
	if err != nil {
		return err
	}

	sig, err := signer.SignHex(digest, priv)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, sig)
	return nil
}

func runVerify(args []string, stdout, stderr io.Writer) error {
	fs, opts := newFlagSet("verify", stderr)
	pubHex := fs.String("pub", "", "Compressed public key in hex")
	sigHex := fs.String("sig", "", "Signature in hex (r || s)")
	var in input
	in.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pubHex == "" || *sigHex == "" {
		return errors.New("-pub and -sig are required")
	}

	signer, err := opts.signer(stderr)
	if err != nil {
		return err
	}
	pub, err := signer.Params().ParsePublicKeyHex(*pubHex)
	if err != nil {
		return err
	}
	digest, err := in.resolve(signer)
	if err != nil {
		return err
	}

	ok, err := signer.VerifyHex(digest, *sigHex, pub)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(stdout, "invalid")
		return errInvalid
	}
	fmt.Fprintln(stdout, "valid")
	return nil
}

func runVerifyBatch(args []string, stdout, stderr io.Writer) error {
	fs, opts := newFlagSet("verify-batch", stderr)
	file := fs.String("file", "", "Signature records (.json or .csv)")
	pubHex := fs.String("pub", "", "Public key for records that carry none")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = auto-detect based on CPU cores)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New("-file is required")
	}

	signer, err := opts.signer(stderr)
	if err != nil {
		return err
	}

	var fallback *gostecc.PublicKey
	if *pubHex != "" {
		fallback, err = signer.Params().ParsePublicKeyHex(*pubHex)
		if err != nil {
			return err
		}
	}

	items, err := signer.LoadBatch(*file, fallback)
	if err != nil {
		return err
	}
	results, err := signer.VerifyBatch(context.Background(), items, *workers)
	if err != nil {
		return err
	}

	invalid := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			invalid++
			fmt.Fprintf(stdout, "%s\terror: %v\n", res.Label, res.Err)
		case !res.Valid:
			invalid++
			fmt.Fprintf(stdout, "%s\tinvalid\n", res.Label)
		default:
			fmt.Fprintf(stdout, "%s\tvalid\n", res.Label)
		}
	}
	fmt.Fprintf(stdout, "%d of %d signatures valid\n", len(results)-invalid, len(results))

	if invalid > 0 {
		return errInvalid
	}
	return nil
}

func runParams(args []string, stdout, stderr io.Writer) error {
	fs, opts := newFlagSet("params", stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	params, err := gostecc.LoadParams(opts.params)
	if err != nil {
		return err
	}
	data, err := gostecc.MarshalParams(params)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

func runBasepoint(args []string, stdout, stderr io.Writer) error {
	fs, opts := newFlagSet("basepoint", stderr)
	curvePath := fs.String("curve", "sect163k1", "Binary curve: YAML file or preset (sect163k1)")
	keypair := fs.Bool("keypair", false, "Also generate a key pair on the derived base point")
	if err := fs.Parse(args); err != nil {
		return err
	}

	curve, err := gostecc.LoadBinaryCurve(*curvePath)
	if err != nil {
		return err
	}
	gen := gostecc.NewBinaryKeyGenerator(curve).
		WithLogger(opts.logger(stderr)).
		WithMaxAttempts(opts.maxAttempts)

	if !*keypair {
		p, err := gen.BasePoint()
		if err != nil {
			return err
		}
		printBinaryPoint(stdout, "base", p)
		return nil
	}

	kp, err := gen.GenerateKeyPair()
	if err != nil {
		return err
	}
	printBinaryPoint(stdout, "base", kp.BasePoint)
	fmt.Fprintf(stdout, "private: %s\n", kp.D.Text(16))
	printBinaryPoint(stdout, "public", kp.Q)
	return nil
}

func printBinaryPoint(w io.Writer, label string, p gostecc.BinaryPoint) {
	fmt.Fprintf(w, "%s.x: %s\n", label, p.X.Big().Text(16))
	fmt.Fprintf(w, "%s.y: %s\n", label, p.Y.Big().Text(16))
}

package gostecc

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mahdiidarabi/gost-ecc/internal/digest"
	"github.com/mahdiidarabi/gost-ecc/internal/ec2m"
	"github.com/mahdiidarabi/gost-ecc/internal/parser"
	"github.com/mahdiidarabi/gost-ecc/internal/retry"
)

// Config holds the tunables shared by Signers and the CLI.
type Config struct {
	// MaxAttempts caps every rejection-sampling loop (0 = default).
	MaxAttempts int `yaml:"max_attempts"`

	// Hash names the digest used for messages (empty = streebog256).
	Hash string `yaml:"hash"`
}

// DefaultConfig returns the default attempt cap and hash.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: retry.DefaultAttempts,
		Hash:        digest.Default,
	}
}

func (c Config) attempts() int {
	if c.MaxAttempts <= 0 {
		return retry.DefaultAttempts
	}
	return c.MaxAttempts
}

func (c Config) hash() string {
	if c.Hash == "" {
		return digest.Default
	}
	return c.Hash
}

// paramsFile is the YAML layout of a prime-field domain. Integers are
// decimal or 0x-prefixed hex strings; g is the compressed base point in hex.
type paramsFile struct {
	Name string `yaml:"name"`
	P    string `yaml:"p"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
	N    string `yaml:"n"`
	G    string `yaml:"g"`
}

// binaryCurveFile is the YAML layout of a binary-field curve.
type binaryCurveFile struct {
	M  int    `yaml:"m"`
	K1 int    `yaml:"k1"`
	K2 int    `yaml:"k2"`
	K3 int    `yaml:"k3"`
	A  string `yaml:"a"`
	B  string `yaml:"b"`
	N  string `yaml:"n"`
}

// LoadParams reads domain parameters from a YAML file, or returns a preset
// when path names one ("test-192", "secp256k1").
func LoadParams(path string) (*DomainParams, error) {
	switch strings.ToLower(path) {
	case "test-192", "test192":
		return TestParams192(), nil
	case "secp256k1":
		return Secp256k1Params(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}
	return ParseParams(data)
}

// ParseParams decodes YAML domain parameters.
//
// Expected format:
//
//	name: test-192
//	p: "6277101735386680763835789423207666416083908700390324961279"
//	a: "-3"
//	b: "0x64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"
//	n: "0xffffffffffffffffffffffff99def836146bc9b1b4d22831"
//	g: "03188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"
func ParseParams(data []byte) (*DomainParams, error) {
	var f paramsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, makeErrorf(ErrInvalidParams, "failed to parse YAML: %v", err)
	}

	ints := make([]*big.Int, 0, 4)
	for _, kv := range []struct{ name, val string }{
		{"p", f.P}, {"a", f.A}, {"b", f.B}, {"n", f.N},
	} {
		v, err := parseInt(kv.val)
		if err != nil {
			return nil, makeErrorf(ErrInvalidParams, "failed to parse %s: %v", kv.name, err)
		}
		ints = append(ints, v)
	}

	g, err := parser.DecodeHex(f.G)
	if err != nil {
		return nil, makeErrorf(ErrInvalidParams, "failed to parse g: %v", err)
	}

	name := f.Name
	if name == "" {
		name = "custom"
	}
	return NewDomainParams(name, ints[0], ints[1], ints[2], ints[3], g)
}

// LoadBinaryCurve reads a binary-field curve from a YAML file, or returns the
// preset when path is "sect163k1".
func LoadBinaryCurve(path string) (*BinaryCurve, error) {
	if strings.EqualFold(path, "sect163k1") {
		return SECT163K1(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read curve: %w", err)
	}
	return ParseBinaryCurve(data)
}

// ParseBinaryCurve decodes a YAML binary-field curve.
//
// Expected format (k2 and k3 may be omitted for a trinomial):
//
//	m: 163
//	k1: 3
//	k2: 6
//	k3: 7
//	a: "1"
//	b: "1"
//	n: "0x4000000000000000000020108a2e0cc0d99f8a5ef"
func ParseBinaryCurve(data []byte) (*BinaryCurve, error) {
	var f binaryCurveFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, makeErrorf(ErrInvalidParams, "failed to parse YAML: %v", err)
	}

	field, err := ec2m.NewField(f.M, f.K1, f.K2, f.K3)
	if err != nil {
		return nil, makeErrorf(ErrInvalidParams, "binary field: %v", err)
	}

	var ints [3]*big.Int
	for i, kv := range []struct{ name, val string }{
		{"a", f.A}, {"b", f.B}, {"n", f.N},
	} {
		v, err := parseInt(kv.val)
		if err != nil {
			return nil, makeErrorf(ErrInvalidParams, "failed to parse %s: %v", kv.name, err)
		}
		ints[i] = v
	}

	c, err := ec2m.NewCurve(field, ints[0], ints[1], ints[2])
	if err != nil {
		return nil, makeErrorf(ErrInvalidParams, "binary curve: %v", err)
	}
	return c, nil
}

// MarshalParams renders dp in the layout ParseParams reads.
func MarshalParams(dp *DomainParams) ([]byte, error) {
	g, err := dp.curve.Compress(dp.g)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(paramsFile{
		Name: dp.name,
		P:    dp.curve.P.Text(10),
		A:    dp.curve.A.Text(10),
		B:    "0x" + dp.curve.B.Text(16),
		N:    "0x" + dp.n.Text(16),
		G:    hex.EncodeToString(g),
	})
}

func parseInt(s string) (*big.Int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New("missing value")
	}
	return parser.ParseBigInt(s)
}

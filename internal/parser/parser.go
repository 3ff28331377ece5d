// Package parser reads signature records for batch verification from JSON
// and CSV files, and parses the integer and hex notations used in parameter
// files.
package parser

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
)

// Record is one signature to verify. Exactly one of Message and Digest is
// set; PublicKey is optional and falls back to a caller-supplied key.
type Record struct {
	Line      int    // 1-based item or row number
	Message   []byte // raw message, hashed by the caller
	Digest    []byte // precomputed digest
	Signature string // fixed-width hex signature
	PublicKey []byte // compressed public key
}

// RecordParser parses signature records from a stream.
type RecordParser interface {
	Parse(r io.Reader) ([]*Record, error)
}

// JSONParser parses records from a JSON array of objects.
type JSONParser struct {
	MessageField   string // Field name for message (default: "message")
	DigestField    string // Field name for digest (default: "digest")
	SignatureField string // Field name for signature (default: "signature")
	PublicKeyField string // Field name for public key (default: "public_key")
}

// Parse parses records from JSON.
//
// Expected format:
//
//	[
//	  {"message": "test", "signature": "...", "public_key": "03..."},
//	  {"digest": "0x...", "signature": "..."}
//	]
func (p *JSONParser) Parse(r io.Reader) ([]*Record, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	var items []map[string]any
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	messageField := orDefault(p.MessageField, "message")
	digestField := orDefault(p.DigestField, "digest")
	signatureField := orDefault(p.SignatureField, "signature")
	publicKeyField := orDefault(p.PublicKeyField, "public_key")

	records := make([]*Record, 0, len(items))
	for i, item := range items {
		rec := &Record{Line: i + 1}

		if v, ok := item[digestField]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: %s must be a hex string", rec.Line, digestField)
			}
			d, err := DecodeHex(s)
			if err != nil {
				return nil, fmt.Errorf("item %d: failed to parse %s: %w", rec.Line, digestField, err)
			}
			rec.Digest = d
		} else if v, ok := item[messageField]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: %s must be a string", rec.Line, messageField)
			}
			rec.Message = []byte(s)
		} else {
			return nil, fmt.Errorf("item %d: missing %s or %s field", rec.Line, messageField, digestField)
		}

		sig, ok := item[signatureField].(string)
		if !ok {
			return nil, fmt.Errorf("item %d: missing %s field", rec.Line, signatureField)
		}
		rec.Signature = strings.TrimSpace(sig)

		if v, ok := item[publicKeyField]; ok {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: %s must be a hex string", rec.Line, publicKeyField)
			}
			pub, err := DecodeHex(s)
			if err != nil {
				return nil, fmt.Errorf("item %d: failed to parse %s: %w", rec.Line, publicKeyField, err)
			}
			rec.PublicKey = pub
		}

		records = append(records, rec)
	}
	return records, nil
}

// CSVParser parses records from CSV with a header row.
type CSVParser struct {
	MessageCol   string // Column name for message (default: "message")
	DigestCol    string // Column name for digest (default: "digest")
	SignatureCol string // Column name for signature (default: "signature")
	PublicKeyCol string // Column name for public key (default: "public_key")
}

// Parse parses records from CSV. A non-empty digest cell takes precedence
// over the message cell.
func (p *CSVParser) Parse(r io.Reader) ([]*Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	messageIdx, digestIdx, signatureIdx, publicKeyIdx := -1, -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case orDefault(p.MessageCol, "message"):
			messageIdx = i
		case orDefault(p.DigestCol, "digest"):
			digestIdx = i
		case orDefault(p.SignatureCol, "signature"):
			signatureIdx = i
		case orDefault(p.PublicKeyCol, "public_key"):
			publicKeyIdx = i
		}
	}

	if signatureIdx == -1 {
		return nil, errors.New("missing required column: signature")
	}
	if messageIdx == -1 && digestIdx == -1 {
		return nil, errors.New("missing required column: message or digest")
	}

	cell := func(record []string, idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var records []*Record
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		rec := &Record{Line: row, Signature: cell(record, signatureIdx)}
		if rec.Signature == "" {
			return nil, fmt.Errorf("row %d: empty signature", row)
		}

		if d := cell(record, digestIdx); d != "" {
			rec.Digest, err = DecodeHex(d)
			if err != nil {
				return nil, fmt.Errorf("row %d: failed to parse digest: %w", row, err)
			}
		} else if messageIdx >= 0 && messageIdx < len(record) {
			// Messages are taken verbatim, surrounding spaces included.
			rec.Message = []byte(record[messageIdx])
		} else {
			return nil, fmt.Errorf("row %d: missing message or digest", row)
		}

		if pk := cell(record, publicKeyIdx); pk != "" {
			rec.PublicKey, err = DecodeHex(pk)
			if err != nil {
				return nil, fmt.Errorf("row %d: failed to parse public key: %w", row, err)
			}
		}

		records = append(records, rec)
	}
	return records, nil
}

// ParseFile picks a parser from the file extension (.json or .csv).
func ParseFile(path string) ([]*Record, error) {
	var p RecordParser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		p = &JSONParser{}
	case ".csv":
		p = &CSVParser{}
	default:
		return nil, fmt.Errorf("unsupported record file %q: want .json or .csv", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// DecodeHex decodes a hex string, handling the 0x prefix and surrounding
// whitespace.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}

// ParseBigInt parses an integer from a string, json.Number or Go integer.
// Strings are hex when prefixed with 0x and decimal otherwise, so "10" is
// ten and "1a" is an error. A leading minus sign is allowed in both
// notations.
func ParseBigInt(val any) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		neg := strings.HasPrefix(s, "-")
		if neg {
			s = s[1:]
		}

		base := 10
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			s, base = s[2:], 16
		}

		z, ok := new(big.Int).SetString(s, base)
		if !ok || s == "" || strings.ContainsAny(s, "+-_") {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		if neg {
			z.Neg(z)
		}
		return z, nil

	case json.Number:
		z, ok := new(big.Int).SetString(string(v), 10)
		if !ok {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", val)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

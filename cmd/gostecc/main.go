// Command gostecc signs and verifies messages with GOST-style ECDSA and
// derives base points and key pairs on binary-field curves.
//
// Usage:
//
//	gostecc keygen       -params test-192
//	gostecc pubkey       -params test-192 -key <hex>
//	gostecc sign         -params test-192 -key <hex> -message test
//	gostecc verify       -params test-192 -pub <hex> -message test -sig <hex>
//	gostecc verify-batch -params test-192 -file signatures.json -pub <hex>
//	gostecc params       -params secp256k1
//	gostecc basepoint    -curve sect163k1 -keypair
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type command struct {
	name    string
	summary string
	run     func(args []string, stdout, stderr io.Writer) error
}

var commands = []command{
	{"keygen", "generate a private key and its public key", runKeygen},
	{"pubkey", "derive the public key of a private key", runPubkey},
	{"sign", "sign a message or digest", runSign},
	{"verify", "verify a signature", runVerify},
	{"verify-batch", "verify every signature in a JSON or CSV file", runVerifyBatch},
	{"params", "print domain parameters as YAML", runParams},
	{"basepoint", "derive a base point on a binary-field curve", runBasepoint},
}

// run dispatches args to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return 2
		}
		return 0
	}

	for _, cmd := range commands {
		if cmd.name != args[0] {
			continue
		}
		err := cmd.run(args[1:], stdout, stderr)
		switch {
		case err == nil, errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errInvalid):
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, "Error: unknown command %q\n", args[0])
	usage(stderr)
	return 2
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: gostecc <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-13s %s\n", cmd.name, cmd.summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'gostecc <command> -h' for the flags of a command.")
}

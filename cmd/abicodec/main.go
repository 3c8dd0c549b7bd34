// Command abicodec is a thin CLI wrapper around the abi package: encode and
// decode values against a type string, and compute Keccak-256 digests and
// function selectors.
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"

	abi "github.com/go-abi/ethabi"
)

func main() {
	root := &command.C{
		Name:  "abicodec",
		Usage: "command args...",
		Commands: []*command.C{
			{
				Name:  "encode",
				Usage: "encode <schema> <json-value>",
				Help:  "Encode a JSON value under an ABI type string, printing 0x-prefixed hex.",
				Run:   command.Adapt(runEncode),
			},
			{
				Name:     "decode",
				Usage:    "decode <schema> <0x-hex>",
				Help:     "Decode 0x-prefixed hex under an ABI type string, printing a JSON rendering.",
				SetFlags: command.Flags(flax.MustBind, &decodeArgs),
				Run:      command.Adapt(runDecode),
			},
			{
				Name:     "keccak256",
				Usage:    "keccak256 [data]",
				Help:     "Hash an argument, or stdin if no argument is given.",
				SetFlags: command.Flags(flax.MustBind, &keccakArgs),
				Run:      command.Adapt(runKeccak256),
			},
			{
				Name:  "selector",
				Usage: "selector <name(type,type,...)>",
				Help:  "Print the 4-byte function selector for a signature.",
				Run:   command.Adapt(runSelector),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

var decodeArgs struct {
	Lenient bool `flag:"lenient,Decode with lenient padding rules instead of strict"`
}

var keccakArgs struct {
	Hex bool `flag:"hex,Treat the argument as 0x-prefixed hex instead of literal bytes"`
}

func runEncode(env *command.Env, schema, jsonValue string) error {
	dec := json.NewDecoder(strings.NewReader(jsonValue))
	dec.UseNumber()
	var value any
	if err := dec.Decode(&value); err != nil {
		return fmt.Errorf("parsing json value: %w", err)
	}

	out, err := abi.Encode(schema, value)
	if err != nil {
		return err
	}
	fmt.Println("0x" + hex.EncodeToString(out))
	return nil
}

func runDecode(env *command.Env, schema, hexValue string) error {
	raw, err := hex.DecodeString(strings.TrimPrefix(hexValue, "0x"))
	if err != nil {
		return fmt.Errorf("parsing hex value: %w", err)
	}

	value, err := abi.Decode(schema, raw, !decodeArgs.Lenient)
	if err != nil {
		return err
	}

	out, err := json.Marshal(toJSONValue(value))
	if err != nil {
		return fmt.Errorf("rendering decoded value as json: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runKeccak256(env *command.Env, args ...string) error {
	var data []byte
	switch len(args) {
	case 0:
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		data = raw
	case 1:
		if keccakArgs.Hex {
			raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
			if err != nil {
				return fmt.Errorf("parsing hex argument: %w", err)
			}
			data = raw
		} else {
			data = []byte(args[0])
		}
	default:
		return env.Usagef("keccak256 takes at most one argument")
	}

	digest := abi.Keccak256(data)
	fmt.Println("0x" + hex.EncodeToString(digest[:]))
	return nil
}

func runSelector(env *command.Env, signature string) error {
	name, params, err := parseSignature(signature)
	if err != nil {
		return err
	}
	sel := abi.Selector(name, params)
	fmt.Println("0x" + hex.EncodeToString(sel[:]))
	return nil
}

// parseSignature splits "name(type,type,...)" into its name and parsed
// parameter types.
func parseSignature(signature string) (string, []abi.Type, error) {
	open := strings.IndexByte(signature, '(')
	if open < 0 || !strings.HasSuffix(signature, ")") {
		return "", nil, fmt.Errorf("malformed signature %q: want name(type,type,...)", signature)
	}
	name := signature[:open]
	body := signature[open+1 : len(signature)-1]
	if body == "" {
		return name, nil, nil
	}

	parts := splitTopLevel(body)
	types := make([]abi.Type, len(parts))
	for i, p := range parts {
		t, err := abi.ParseSchema(p)
		if err != nil {
			return "", nil, fmt.Errorf("parameter %d (%q): %w", i, p, err)
		}
		types[i] = t
	}
	return name, types, nil
}

// splitTopLevel splits s on commas that are not nested inside parens or
// brackets, so that tuple and array parameter types split correctly.
func splitTopLevel(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// toJSONValue rewrites the native abi value domain into a tree
// encoding/json can render directly: Address and []byte, which have no
// JSON representation of their own, become "0x"-prefixed hex strings;
// *big.Int and decimal.Decimal already marshal themselves sensibly.
func toJSONValue(v any) any {
	switch x := v.(type) {
	case abi.Address:
		return x.Hex()
	case []byte:
		return "0x" + hex.EncodeToString(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = toJSONValue(e)
		}
		return out
	default:
		return v
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/gitdocs"
)

var getCmd = &cobra.Command{
	Use:   "get <document>",
	Short: "Print a document's JSON content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		doc, err := store.Get(args[0])
		if err != nil {
			return err
		}
		return printJSON(doc)
	},
}

var setCmd = &cobra.Command{
	Use:   "set <document> <path> <value>",
	Short: "Set a dotted-path field to a JSON value",
	Long: `Set a dotted-path field inside a document to a JSON value.

The value argument is parsed as JSON; a value that is not valid JSON is
treated as a plain string, so both 'set a.json count 5' and
'set a.json name alice' work.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return store.SetField(args[0], args[1], parseValue(args[2]))
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset <document> <path>",
	Short: "Remove a dotted-path field from a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return store.UnsetField(args[0], args[1])
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <document>",
	Short: "Delete a document file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return store.Remove(args[0])
	},
}

var findCmd = &cobra.Command{
	Use:   "find <field> <op> <value>",
	Short: "Find documents whose field satisfies a comparison",
	Long: `Find documents whose field satisfies a comparison.

op is one of eq, ne, ge, gt, le, lt. The field is a dotted path into each
document; the value is parsed as JSON with a plain-string fallback.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, log, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		q, err := buildQuery(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		docs, err := store.FindMany(q)
		if err != nil {
			return err
		}
		return printJSON(docs)
	},
}

func init() {
	rootCmd.AddCommand(getCmd, setCmd, unsetCmd, rmCmd, findCmd)
}

// parseValue interprets a CLI argument as JSON, falling back to a plain
// string.
func parseValue(arg string) any {
	var v any
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return arg
	}
	return v
}

func buildQuery(field, op, arg string) (gitdocs.Query, error) {
	lit, ok := gitdocs.LiteralFromJSON(parseValue(arg))
	if !ok {
		return gitdocs.Query{}, fmt.Errorf("value %q is not a scalar", arg)
	}
	lhs := gitdocs.Field(field, lit)
	rhs := gitdocs.Lit(lit)

	switch op {
	case "eq":
		return gitdocs.Eq(lhs, rhs), nil
	case "ne":
		return gitdocs.Ne(lhs, rhs), nil
	case "ge":
		return gitdocs.Ge(lhs, rhs), nil
	case "gt":
		return gitdocs.Gt(lhs, rhs), nil
	case "le":
		return gitdocs.Le(lhs, rhs), nil
	case "lt":
		return gitdocs.Lt(lhs, rhs), nil
	default:
		return gitdocs.Query{}, fmt.Errorf("unknown operator %q (want eq, ne, ge, gt, le or lt)", op)
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

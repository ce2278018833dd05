// Command combinat explores the built-in catalog of combinatorial classes:
// it counts, lists, unranks, ranks and samples objects of a chosen weight.
//
// Usage:
//
//	combinat grammars
//	combinat count binary-trees 7
//	combinat list dyck-words 6
//	combinat unrank binary-words 6 20
//	combinat rank binary-words ABABAA
//	combinat random fibonacci-words 8 -n 3
package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocombinat/pkg/combinat"
	"github.com/gitrdm/gocombinat/pkg/combinat/catalog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "combinat:", err)
		os.Exit(1)
	}
}

type cliOptions struct {
	verbose bool
}

func (o *cliOptions) seal(name string) (*combinat.Grammar, catalog.Fixture, error) {
	f, ok := catalog.Lookup(name)
	if !ok {
		return nil, f, fmt.Errorf("unknown grammar %q; try \"combinat grammars\"", name)
	}
	var opts []combinat.Option
	if o.verbose {
		opts = append(opts, combinat.WithLogger(hclog.New(&hclog.LoggerOptions{
			Name:  "combinat",
			Level: hclog.Debug,
		})))
	}
	g, err := f.Seal(opts...)
	if err != nil {
		return nil, f, err
	}
	return g, f, nil
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	root := &cobra.Command{
		Use:           "combinat",
		Short:         "count, enumerate, rank and sample combinatorial classes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log grammar sealing and valuation passes")
	root.AddCommand(
		newGrammarsCmd(),
		newCountCmd(opts),
		newListCmd(opts),
		newUnrankCmd(opts),
		newRankCmd(opts),
		newRandomCmd(opts),
	)
	return root
}

func newGrammarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "list the built-in grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range catalog.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s root %-10s %s\n", f.Name, f.Root, f.Description)
			}
			return nil
		},
	}
}

func parseWeight(arg string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil || n < 0 {
		return 0, fmt.Errorf("weight must be a non-negative integer, got %q", arg)
	}
	return n, nil
}

func newCountCmd(opts *cliOptions) *cobra.Command {
	var upto bool
	cmd := &cobra.Command{
		Use:   "count <grammar> <weight>",
		Short: "count the objects of a weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, f, err := opts.seal(args[0])
			if err != nil {
				return err
			}
			n, err := parseWeight(args[1])
			if err != nil {
				return err
			}
			from := n
			if upto {
				from = 0
			}
			for i := from; i <= n; i++ {
				c, err := g.Count(f.Root, i)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "count(%d) = %s\n", i, c)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&upto, "upto", false, "print every count from weight 0 up")
	return cmd
}

func newListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <grammar> <weight>",
		Short: "enumerate the objects of a weight in canonical order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, f, err := opts.seal(args[0])
			if err != nil {
				return err
			}
			n, err := parseWeight(args[1])
			if err != nil {
				return err
			}
			objects, err := g.List(f.Root, n)
			if err != nil {
				return err
			}
			for r, o := range objects {
				fmt.Fprintf(cmd.OutOrStdout(), "%6d  %v\n", r, o)
			}
			return nil
		},
	}
}

func newUnrankCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unrank <grammar> <weight> <rank>",
		Short: "return the object at a rank",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, f, err := opts.seal(args[0])
			if err != nil {
				return err
			}
			n, err := parseWeight(args[1])
			if err != nil {
				return err
			}
			r, ok := new(big.Int).SetString(args[2], 10)
			if !ok {
				return fmt.Errorf("rank must be a decimal integer, got %q", args[2])
			}
			o, err := g.Unrank(f.Root, n, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", o)
			return nil
		},
	}
}

func newRankCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rank <grammar> <word>",
		Short: "return the rank of a word within its weight class",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, f, err := opts.seal(args[0])
			if err != nil {
				return err
			}
			if !f.Words {
				return fmt.Errorf("grammar %q does not enumerate words; rank is only available from the library", f.Name)
			}
			word := args[1]
			w, err := g.Weight(f.Root, word)
			if err != nil {
				return err
			}
			r, err := g.Rank(f.Root, word)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "weight %d rank %s\n", w, r)
			return nil
		},
	}
}

func newRandomCmd(opts *cliOptions) *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "random <grammar> <weight>",
		Short: "draw uniformly random objects of a weight",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, f, err := opts.seal(args[0])
			if err != nil {
				return err
			}
			n, err := parseWeight(args[1])
			if err != nil {
				return err
			}
			for i := 0; i < samples; i++ {
				o, err := g.Random(f.Root, n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v\n", o)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 1, "number of objects to draw")
	return cmd
}

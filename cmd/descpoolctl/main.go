// Command descpoolctl loads a serialized FileDescriptorSet, resolves it
// into a descriptor pool, and prints a summary of what it found. It
// exists to exercise the descriptorpool library end-to-end; reading the
// descriptor set from disk is the only thing it does that the library
// itself does not.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	descriptorpool "github.com/protoflow/descriptorpool"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "descpoolctl <descriptor-set.bin>",
		Short: "Resolve a FileDescriptorSet and print a summary of its pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			var fds descriptorpb.FileDescriptorSet
			if err := proto.Unmarshal(data, &fds); err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			builder := descriptorpool.NewBuilder(descriptorpool.WithLogger(logger))
			builder.AddFiles(&fds)
			pool, err := builder.Build()
			if err != nil {
				return err
			}

			printSummary(cmd, pool)
			return nil
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log build progress")
	return root
}

func printSummary(cmd *cobra.Command, pool *descriptorpool.Pool) {
	out := cmd.OutOrStdout()
	for _, f := range pool.Files() {
		fmt.Fprintf(out, "%s (%v)\n", f.Name(), f.Syntax())
		for _, m := range f.Messages() {
			printMessage(out, m, 1)
		}
		for _, e := range f.Enums() {
			fmt.Fprintf(out, "  enum %s\n", e.FullName())
		}
		for _, s := range f.Services() {
			fmt.Fprintf(out, "  service %s\n", s.FullName())
			for _, m := range s.Methods() {
				fmt.Fprintf(out, "    rpc %s(%s) returns (%s)\n", m.Name(), m.Input().FullName(), m.Output().FullName())
			}
		}
	}
}

func printMessage(out io.Writer, m descriptorpool.MessageDescriptor, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	fmt.Fprintf(out, "%smessage %s\n", indent, m.FullName())
	for _, field := range m.Fields() {
		fmt.Fprintf(out, "%s  %s = %d\n", indent, field.Name(), field.Number())
	}
}

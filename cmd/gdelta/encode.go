// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gdelta-go/gdelta"
	"github.com/gdelta-go/gdelta/wrapper"
)

type encodeCommandeer struct {
	root *rootCommandeer
	cmd  *cobra.Command

	output   string
	compress string
	verify   bool
	yes      bool
	force    bool
	quiet    bool
}

func newEncodeCommand(root *rootCommandeer) *encodeCommandeer {
	c := &encodeCommandeer{root: root}

	c.cmd = &cobra.Command{
		Use:   "encode <base> <new>",
		Short: "Create a delta patch from base to new",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0], args[1])
		},
	}

	flags := c.cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output delta file (required)")
	flags.StringVarP(&c.compress, "compress", "c", "none", "compression: none, zstd, or lz4")
	flags.BoolVarP(&c.verify, "verify", "", false, "decode the produced delta and compare against new")
	flags.BoolVarP(&c.yes, "yes", "y", false, "skip the memory warning prompt")
	flags.BoolVarP(&c.force, "force", "f", false, "overwrite output if it already exists")
	flags.BoolVarP(&c.quiet, "quiet", "q", false, "suppress non-error output")
	c.cmd.MarkFlagRequired("output")

	return c
}

func (c *encodeCommandeer) run(basePath, newPath string) error {
	log := c.root.logger.Sugar()

	if _, err := os.Stat(basePath); err != nil {
		return fmt.Errorf("base file not found: %s", basePath)
	}
	if _, err := os.Stat(newPath); err != nil {
		return fmt.Errorf("new file not found: %s", newPath)
	}
	if !c.force {
		if _, err := os.Stat(c.output); err == nil {
			return fmt.Errorf("output already exists: %s (use -f to overwrite)", c.output)
		}
	}

	algo, err := wrapper.ParseAlgorithm(c.compress)
	if err != nil {
		return err
	}

	base, err := os.ReadFile(basePath)
	if err != nil {
		return err
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return err
	}

	required := estimateEncodeMemory(uint64(len(base)), uint64(len(newData)))
	if err := checkMemory(required, c.yes, c.quiet); err != nil {
		return err
	}

	log.Debugw("encoding", "base_size", len(base), "new_size", len(newData), "compress", algo)

	delta, err := gdelta.Encode(newData, base)
	if err != nil {
		return wrapCodecError(fmt.Errorf("encode: %w", err))
	}

	if c.verify {
		recovered, err := gdelta.Decode(delta, base)
		if err != nil {
			return wrapCodecError(fmt.Errorf("verify: decode of produced delta failed: %w", err))
		}
		if !bytes.Equal(recovered, newData) {
			return wrapCodecError(fmt.Errorf("verify: decoded output does not match new"))
		}
	}

	wrapped, err := wrapper.Wrap(delta, algo)
	if err != nil {
		return wrapCodecError(fmt.Errorf("compress: %w", err))
	}

	if err := os.WriteFile(c.output, wrapped, 0o644); err != nil {
		return err
	}

	if !c.quiet {
		fmt.Printf("%s %s -> %s (%s)\n", color.GreenString("Encoded"),
			humanize.Bytes(uint64(len(newData))), humanize.Bytes(uint64(len(wrapped))), c.output)
	}

	return nil
}

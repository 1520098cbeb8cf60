// SPDX-License-Identifier: MIT
// Source: github.com/gdelta-go/gdelta

package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gdelta-go/gdelta"
	"github.com/gdelta-go/gdelta/wrapper"
)

type decodeCommandeer struct {
	root *rootCommandeer
	cmd  *cobra.Command

	output string
	format string
	yes    bool
	force  bool
	quiet  bool
}

func newDecodeCommand(root *rootCommandeer) *decodeCommandeer {
	c := &decodeCommandeer{root: root}

	c.cmd = &cobra.Command{
		Use:   "decode <base> <delta>",
		Short: "Apply a delta patch to reconstruct new",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(args[0], args[1])
		},
	}

	flags := c.cmd.Flags()
	flags.StringVarP(&c.output, "output", "o", "", "output file (required)")
	flags.StringVarP(&c.format, "format", "", "", "compression format override: none, zstd, or lz4 (default: auto-detect)")
	flags.BoolVarP(&c.yes, "yes", "y", false, "skip the memory warning prompt")
	flags.BoolVarP(&c.force, "force", "f", false, "overwrite output if it already exists")
	flags.BoolVarP(&c.quiet, "quiet", "q", false, "suppress non-error output")
	c.cmd.MarkFlagRequired("output")

	return c
}

func (c *decodeCommandeer) run(basePath, deltaPath string) error {
	log := c.root.logger.Sugar()

	if _, err := os.Stat(basePath); err != nil {
		return fmt.Errorf("base file not found: %s", basePath)
	}
	if _, err := os.Stat(deltaPath); err != nil {
		return fmt.Errorf("delta file not found: %s", deltaPath)
	}
	if !c.force {
		if _, err := os.Stat(c.output); err == nil {
			return fmt.Errorf("output already exists: %s (use -f to overwrite)", c.output)
		}
	}

	base, err := os.ReadFile(basePath)
	if err != nil {
		return err
	}
	wrapped, err := os.ReadFile(deltaPath)
	if err != nil {
		return err
	}

	required := estimateDecodeMemory(uint64(len(base)), uint64(len(wrapped)))
	if err := checkMemory(required, c.yes, c.quiet); err != nil {
		return err
	}

	delta, algo, err := unwrapDelta(wrapped, c.format)
	if err != nil {
		return wrapCodecError(fmt.Errorf("decompress: %w", err))
	}

	log.Debugw("decoding", "base_size", len(base), "delta_size", len(delta), "format", algo)

	out, err := gdelta.Decode(delta, base)
	if err != nil {
		return wrapCodecError(fmt.Errorf("decode: %w", err))
	}

	if err := os.WriteFile(c.output, out, 0o644); err != nil {
		return err
	}

	if !c.quiet {
		fmt.Printf("%s %s -> %s (%s)\n", color.GreenString("Decoded"),
			humanize.Bytes(uint64(len(wrapped))), humanize.Bytes(uint64(len(out))), c.output)
	}

	return nil
}

// unwrapDelta strips a compression wrapper from a delta file. A forced
// format skips auto-detection entirely, treating the whole input as a raw
// payload under that algorithm; otherwise it auto-detects via the wrapper
// package's tag, falling back to treating untagged input as a bare
// core-codec delta (no wrapper at all).
func unwrapDelta(data []byte, format string) ([]byte, wrapper.Algorithm, error) {
	if format != "" {
		algo, err := wrapper.ParseAlgorithm(format)
		if err != nil {
			return nil, 0, err
		}
		out, err := wrapper.DecompressRaw(data, algo)
		return out, algo, err
	}

	if wrapper.DetectTagged(data) {
		return wrapper.Unwrap(data)
	}

	return data, wrapper.None, nil
}

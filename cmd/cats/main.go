package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/arbitrary-cat/cats"
	"github.com/spf13/cobra"
)

var (
	digits string
	prefix string
	suffix string
	minLen int
	sign   string
	repeat int
	width  int
	align  string
)

var rootCmd = &cobra.Command{
	Use:   "cats [integers...]",
	Short: "Format integers with a configurable digit alphabet",
	Long: `cats renders integers using an arbitrary digit alphabet with optional
prefix, suffix, zero padding, and sign policy. Each argument is
formatted on its own line. The alphabet's length is the radix, so
--digits 01 prints binary and --digits 0123456789abcdef prints hex.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		policy, err := parseSign(sign)
		if err != nil {
			return err
		}
		alignment, err := parseAlign(align)
		if err != nil {
			return err
		}
		if len([]rune(digits)) < 2 {
			return fmt.Errorf("digit alphabet %q has fewer than 2 glyphs", digits)
		}
		f := cats.IntFormat{
			Prefix: prefix,
			Suffix: suffix,
			Digits: []rune(digits),
			MinLen: minLen,
			Sign:   policy,
		}
		for _, arg := range args {
			v, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", arg)
			}
			elem := cats.FmtInt(f, v)
			if repeat > 1 {
				elem = cats.Repeat(repeat, elem)
			}
			line, err := cats.Cat(elem)
			if err != nil {
				return err
			}
			if _, err := cats.Print(cats.Pad(line, width, alignment), cats.Rune('\n')); err != nil {
				return err
			}
		}
		return nil
	},
}

func parseSign(s string) (cats.SignPolicy, error) {
	switch s {
	case "empty":
		return cats.SignEmpty, nil
	case "plus":
		return cats.SignPlus, nil
	case "space":
		return cats.SignSpace, nil
	}
	return 0, fmt.Errorf("unknown sign policy %q (want empty, plus, or space)", s)
}

func parseAlign(s string) (cats.Alignment, error) {
	switch s {
	case "left":
		return cats.AlignLeft, nil
	case "center":
		return cats.AlignCenter, nil
	case "right":
		return cats.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q (want left, center, or right)", s)
}

func main() {
	rootCmd.Flags().StringVar(&digits, "digits", "0123456789", "digit alphabet; its length is the radix")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "string written before the digit field")
	rootCmd.Flags().StringVar(&suffix, "suffix", "", "string written after the digit field")
	rootCmd.Flags().IntVar(&minLen, "min-len", 0, "minimum digit-field width, padded with the zero digit")
	rootCmd.Flags().StringVar(&sign, "sign", "empty", "sign policy for non-negative values: empty, plus, or space")
	rootCmd.Flags().IntVar(&repeat, "repeat", 1, "render each formatted value this many times")
	rootCmd.Flags().IntVar(&width, "width", 0, "pad each line to this display width")
	rootCmd.Flags().StringVar(&align, "align", "left", "padding alignment: left, center, or right")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

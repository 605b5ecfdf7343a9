package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/docent-dev/docent"
	"github.com/docent-dev/docent/overlay"
)

var (
	cutoutViewport string
	cutoutTarget   string
	cutoutPadding  float64
	cutoutRadius   float64
	cutoutFull     bool
)

func init() {
	rootCmd.AddCommand(cutoutCmd)

	cutoutCmd.Flags().StringVar(&cutoutViewport, "viewport", "1024x768", "viewport size as WxH")
	cutoutCmd.Flags().StringVar(&cutoutTarget, "target", "", "target rectangle as X,Y,W,H")
	cutoutCmd.Flags().Float64Var(&cutoutPadding, "padding", 8, "cutout padding")
	cutoutCmd.Flags().Float64Var(&cutoutRadius, "radius", 4, "cutout corner radius")
	cutoutCmd.Flags().BoolVar(&cutoutFull, "full", false, "emit a complete SVG element instead of the bare path")
	_ = cutoutCmd.MarkFlagRequired("target")
}

var cutoutCmd = &cobra.Command{
	Use:   "cutout",
	Short: "Compute an overlay cutout path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		viewport, err := parseSize(cutoutViewport)
		if err != nil {
			return err
		}
		target, err := parseRect(cutoutTarget)
		if err != nil {
			return err
		}

		if cutoutFull {
			ov := overlay.New(viewport,
				overlay.WithPadding(cutoutPadding), overlay.WithRadius(cutoutRadius))
			ov.Show(target)
			markup := ov.Markup()
			if markup == "" {
				return errors.New("target lies outside the viewport, nothing to draw")
			}
			fmt.Fprintln(cmd.OutOrStdout(), markup)
			return nil
		}

		path := overlay.CutoutPath(viewport, target, cutoutPadding, cutoutRadius)
		if path == "" {
			return errors.New("target lies outside the viewport, nothing to draw")
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// parseSize reads a "WxH" size.
func parseSize(value string) (docent.Size, error) {
	parts := strings.SplitN(strings.TrimSpace(value), "x", 2)
	if len(parts) != 2 {
		return docent.Size{}, fmt.Errorf("invalid size %q (want WxH)", value)
	}
	w, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return docent.Size{}, fmt.Errorf("invalid size %q: %w", value, err)
	}
	h, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return docent.Size{}, fmt.Errorf("invalid size %q: %w", value, err)
	}
	return docent.Size{Width: w, Height: h}, nil
}

// parseRect reads an "X,Y,W,H" rectangle.
func parseRect(value string) (docent.Rect, error) {
	parts := strings.Split(strings.TrimSpace(value), ",")
	if len(parts) != 4 {
		return docent.Rect{}, fmt.Errorf("invalid rectangle %q (want X,Y,W,H)", value)
	}
	nums := make([]float64, len(parts))
	for i, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return docent.Rect{}, fmt.Errorf("invalid rectangle %q: %w", value, err)
		}
		nums[i] = n
	}
	return docent.Rect{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}, nil
}

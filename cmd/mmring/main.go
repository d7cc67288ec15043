// File: cmd/mmring/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// mmring CLI: pipe a byte stream through a mirror-mapped ring, or
// probe the double mapping on the running system.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/momentics/mmring/api"
	"github.com/momentics/mmring/control"
	"github.com/momentics/mmring/internal/vmspan"
	"github.com/momentics/mmring/relay"
	"github.com/momentics/mmring/ring"
)

var (
	cfgPath   string
	width     int
	lgPages   uint8
	showStats bool
)

func main() {
	root := &cobra.Command{
		Use:           "mmring",
		Short:         "mirror-mapped ring buffer tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "YAML config file")
	root.PersistentFlags().IntVar(&width, "width", 32, "cursor width in bits (16 or 32)")
	root.PersistentFlags().Uint8Var(&lgPages, "lg-pages", 4, "binary logarithm of the page count")

	pipeCmd := &cobra.Command{
		Use:   "pipe",
		Short: "bridge stdin to stdout through a mirror ring",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			metrics := control.NewMetricsRegistry()
			switch cfg.Width {
			case 16:
				err = pipe[uint16](cfg.LgPages, metrics)
			default:
				err = pipe[uint32](cfg.LgPages, metrics)
			}
			if showStats {
				for k, v := range metrics.Snapshot() {
					fmt.Fprintf(os.Stderr, "%s\t%d\n", k, v)
				}
			}
			return err
		},
	}
	pipeCmd.Flags().BoolVar(&showStats, "stats", false, "print transfer counters to stderr")

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "construct a ring and prove the two views alias one storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Width == 16 {
				return probe[uint16](cfg.LgPages)
			}
			return probe[uint32](cfg.LgPages)
		},
	}

	root.AddCommand(pipeCmd, probeCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mmring: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfig merges the config file (when given) with the flags;
// explicit flags win.
func resolveConfig(cmd *cobra.Command) (*control.Config, error) {
	cfg := control.DefaultConfig()
	if cfgPath != "" {
		loaded, err := control.LoadConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("width") || cmd.InheritedFlags().Changed("width") {
		cfg.Width = width
	}
	if cmd.Flags().Changed("lg-pages") || cmd.InheritedFlags().Changed("lg-pages") {
		cfg.LgPages = lgPages
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func pipe[C api.Cursor](lgPages uint8, metrics *control.MetricsRegistry) error {
	rb, err := ring.New[C](lgPages)
	if err != nil {
		return err
	}
	defer rb.Close()
	metrics.Set("ring.capacity", int64(rb.Capacity()))
	n, err := relay.Copy(os.Stdout, os.Stdin, rb)
	metrics.Add("relay.bytes", n)
	return err
}

func probe[C api.Cursor](lgPages uint8) error {
	rb, err := ring.New[C](lgPages)
	if err != nil {
		return err
	}
	defer rb.Close()

	capacity := rb.Capacity()
	pageSize := vmspan.PageSize()
	fmt.Printf("capacity  %d bytes (%d pages of %d)\n",
		uint64(capacity), uint64(capacity)/uint64(pageSize), pageSize)
	fmt.Printf("exponent  lg-pages=%d lg-pagesize=%d\n", lgPages, vmspan.LgPageSize())

	// Write through the shadow view, observe through the primary, at
	// the corners and one mid-page offset.
	for _, idx := range []C{0, C(pageSize - 1), capacity / 2, capacity - 1} {
		want := byte(idx ^ 0xA5)
		rb.Poke(idx, want)
		if got := rb.Peek(idx); got != want {
			return fmt.Errorf("mirror mismatch at %d: wrote %#x via shadow, read %#x via primary",
				uint64(idx), want, got)
		}
	}
	fmt.Println("mirror    shadow writes visible through primary view: ok")
	return nil
}

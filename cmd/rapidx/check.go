package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/lucaskalb/proptest/gen"
	"github.com/lucaskalb/proptest/prop"
	"github.com/lucaskalb/proptest/prop/assert"
	"github.com/lucaskalb/proptest/report"
)

// checkSuite is one named property the check command can run.
type checkSuite struct {
	name string
	run  func(cfg prop.Config) prop.Report
}

func builtinSuites() []checkSuite {
	return []checkSuite{
		{
			name: "int/add-identity",
			run: func(cfg prop.Config) prop.Report {
				return prop.Check("int/add-identity", cfg, gen.Int(gen.Size{}), func(x int) error {
					if x+0 != x {
						return fmt.Errorf("x+0 != x for x=%d", x)
					}
					return nil
				})
			},
		},
		{
			name: "slice/reverse-involution",
			run: func(cfg prop.Config) prop.Report {
				g := gen.SliceOf(gen.Int(gen.Size{}), gen.DefaultContainerSize)
				return prop.Check("slice/reverse-involution", cfg, g, func(xs []int) error {
					rev := make([]int, len(xs))
					for i, x := range xs {
						rev[len(xs)-1-i] = x
					}
					rev2 := make([]int, len(rev))
					for i, x := range rev {
						rev2[len(rev)-1-i] = x
					}
					for i := range xs {
						if xs[i] != rev2[i] {
							return fmt.Errorf("reverse(reverse(xs)) != xs at index %d", i)
						}
					}
					return nil
				})
			},
		},
		{
			name: "string/concat-length",
			run: func(cfg prop.Config) prop.Report {
				g := gen.Tuple2Of(gen.String(nil, gen.DefaultContainerSize), gen.String(nil, gen.DefaultContainerSize))
				return prop.Check("string/concat-length", cfg, g, func(p gen.Tuple2[string, string]) error {
					assert.Require(len(p.First+p.Second) == len(p.First)+len(p.Second), "len(a+b) != len(a)+len(b)")
					return nil
				})
			},
		},
	}
}

func newCheckCommand() *cobra.Command {
	var (
		seed      int64
		examples  int
		maxShrink int
		noColor   bool
		cfgFile   string
	)

	cmd := &cobra.Command{
		Use:   "check [suites...]",
		Short: "Run built-in demonstration properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			v.SetDefault("examples", 100)
			v.SetDefault("maxshrink", 1000)
			if cfgFile != "" {
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return fmt.Errorf("reading config: %w", err)
				}
			}
			if cmd.Flags().Changed("examples") {
				v.Set("examples", examples)
			}
			if cmd.Flags().Changed("maxshrink") {
				v.Set("maxshrink", maxShrink)
			}
			if cmd.Flags().Changed("seed") {
				v.Set("seed", seed)
			}

			cfg := prop.Config{
				Seed:      v.GetInt64("seed"),
				Examples:  v.GetInt("examples"),
				MaxShrink: v.GetInt("maxshrink"),
			}

			suites := builtinSuites()
			if len(args) > 0 {
				suites = filterSuites(suites, args)
			}

			reports := make([]prop.Report, len(suites))
			var g errgroup.Group
			for i, s := range suites {
				i, s := i, s
				g.Go(func() error {
					reports[i] = s.run(cfg)
					return nil
				})
			}
			_ = g.Wait()

			rep := report.New(os.Stdout)
			rep.NoColor = noColor
			failed := false
			for _, r := range reports {
				if r.Failed {
					failed = true
					rep.Falsifiable(r.Name, r.Passed, r.ShrinkSteps, r.Message, r.Counterexample, r.Seed)
					continue
				}
				rep.OK(r.Name, r.Passed, 0)
			}
			if failed {
				return fmt.Errorf("one or more properties were falsifiable")
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&examples, "examples", 100, "number of examples per property")
	cmd.Flags().IntVar(&maxShrink, "maxshrink", 1000, "maximum shrink steps per failure")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorized output")
	cmd.Flags().StringVar(&cfgFile, "config", "", "path to a config file (yaml/json/toml) of defaults")

	return cmd
}

func filterSuites(all []checkSuite, names []string) []checkSuite {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	out := make([]checkSuite, 0, len(names))
	for _, s := range all {
		if want[s.name] {
			out = append(out, s)
		}
	}
	return out
}

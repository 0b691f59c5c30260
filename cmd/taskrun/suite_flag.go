// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"taskrun-cli/internal/suite"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// suiteValue is a pflag.Value that only accepts known suite selectors, so an
// unknown --suite fails at parse time with the usage status.
type suiteValue suite.Selector

var _ pflag.Value = (*suiteValue)(nil)

func (v *suiteValue) String() string { return string(*v) }

func (v *suiteValue) Set(s string) error {
	sel := suite.Selector(s)
	if err := sel.Validate(); err != nil {
		return err
	}
	*v = suiteValue(sel)
	return nil
}

func (*suiteValue) Type() string { return "suite" }

// completeSuite offers the known selectors for --suite.
func completeSuite(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	sels := suite.Selectors()
	out := make([]string, 0, len(sels))
	for _, s := range sels {
		out = append(out, s.String()+"\t"+s.Root())
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

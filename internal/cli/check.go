package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/inputkit/inputkit/pkg/profile"
)

type checkOptions struct {
	profilePath string
	rule        string
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [values...]",
		Short: "Validate values against a named profile",
		Long: `Validate each value against the chain defined by the named profile and
print the first failing message per value.

The exit code is non-zero when any value fails, so the command composes
with shell scripts:

  inputkit check --profile rules.yaml --rule email alice@example.com bob`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.profilePath, "profile", "p", "", "Path to the profile file (defaults to $INPUTKIT_PROFILE)")
	cmd.Flags().StringVarP(&opts.rule, "rule", "r", "", "Profile name to validate against")
	_ = cmd.MarkFlagRequired("rule")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	log := newLogger(s)

	path := opts.profilePath
	if path == "" {
		path = s.ProfilePath
	}

	chains, err := profile.Load(path)
	if err != nil {
		return err
	}
	log.Debug("profiles loaded", "path", path, "profiles", len(chains))

	chain, ok := chains[opts.rule]
	if !ok {
		return fmt.Errorf("profile %q not found in %s (available: %v)", opts.rule, path, profileNames(chains))
	}

	failed := 0
	for _, value := range args {
		if msg := chain.Validate(value); msg != "" {
			failed++
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %q: %s\n", value, msg)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "OK    %q\n", value)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d values failed validation", failed, len(args))
	}
	return nil
}

func profileNames[V any](chains map[string]V) []string {
	names := make([]string, 0, len(chains))
	for name := range chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/inputkit/inputkit/internal/tui"
	"github.com/inputkit/inputkit/pkg/field"
	"github.com/inputkit/inputkit/pkg/profile"
	"github.com/inputkit/inputkit/pkg/validators"
)

type formOptions struct {
	profilePath string
}

func newFormCmd() *cobra.Command {
	opts := &formOptions{}

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Run the interactive form demo",
		Long: `Open a terminal form whose inputs are re-validated on every keystroke.

Without --profile a built-in demo form is used (username, age, email,
password); with --profile one input is created per profile, in name order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForm(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profilePath, "profile", "p", "", "Build the form from a profile file instead of the built-in demo")

	return cmd
}

func runForm(opts *formOptions) error {
	var form *field.Form
	if opts.profilePath != "" {
		chains, err := profile.Load(opts.profilePath)
		if err != nil {
			return err
		}
		fields := make([]*field.Field, 0, len(chains))
		for _, name := range profileNames(chains) {
			fields = append(fields, field.New(name, chains[name]))
		}
		form = field.NewForm(fields...)
	} else {
		form = demoForm()
	}
	return tui.Run(form)
}

// demoForm shows one field per validator family: lengths, the semantic
// regex checks and a character-class chain.
func demoForm() *field.Form {
	return field.NewForm(
		field.New("username", validators.Combine(
			validators.Must(validators.LengthBetween(3, 16)),
			validators.Must(validators.ContainsSpecial(validators.WithExactly(0))),
		)),
		field.New("age", validators.Must(validators.Integer())),
		field.New("email", validators.Must(validators.Email())),
		field.New("password", validators.Combine(
			validators.Must(validators.MinLength(8, validators.WithAllowEmpty(false))),
			validators.Must(validators.ContainsUppercase()),
			validators.Must(validators.ContainsDigit()),
			validators.Must(validators.ContainsSpecial()),
		)),
	)
}

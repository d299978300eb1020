package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whatishedoing/domainmodels/pkg/barcode"
)

func (a *app) detectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "detect <number>",
		Short:   "Classify a barcode as ISBN or EAN",
		Example: "  domainctl detect 9783161484100",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := barcode.Detect(args[0])
			if err != nil {
				return errors.New(a.describe(err))
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Symbology(), b)
			return err
		},
	}
}

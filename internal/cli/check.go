package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/whatishedoing/domainmodels/pkg/logger"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <type> <value>...",
		Short: "Report whether each value is valid",
		Example: `  domainctl check ean 73513537 4006381333931
  domainctl check postcode "SW1A 1AA" QQ1`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := lookupKind(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for _, raw := range args[1:] {
				if _, err := k.parse(raw); err != nil {
					invalid++
					a.log.Debug("value rejected", logger.Kind(k.name), logger.RawValue(raw), logger.Error(err))
					fmt.Fprintf(out, "%s\tinvalid\t%s\n", raw, a.describe(err))
					continue
				}
				fmt.Fprintf(out, "%s\tvalid\n", raw)
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidValues, invalid, len(args)-1)
			}
			return nil
		},
	}
}

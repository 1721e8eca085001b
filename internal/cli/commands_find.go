package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"midpoint-service/internal/api/dto"
	"midpoint-service/internal/domain"
	"midpoint-service/internal/services"

	"github.com/spf13/cobra"
)

type findFlags struct {
	Address1  string
	Address2  string
	PlaceType string
	PlaceID1  string
	PlaceID2  string
	Format    Format
}

func newFindCommand(deps Dependencies) *cobra.Command {
	flags := findFlags{Format: FormatJSON}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Run one midpoint search and print the result.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd.Context(), deps)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Midpoint.Find(cmd.Context(), services.MidpointRequest{
				Address1:  flags.Address1,
				Address2:  flags.Address2,
				PlaceType: flags.PlaceType,
				PlaceID1:  flags.PlaceID1,
				PlaceID2:  flags.PlaceID2,
			})
			if err != nil {
				return describeFindError(err)
			}

			text, err := renderPayload(dto.NewMidpointResponse(res), flags.Format)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), text)
		},
	}

	cmd.Flags().StringVar(&flags.Address1, "address1", "", "First address.")
	cmd.Flags().StringVar(&flags.Address2, "address2", "", "Second address.")
	cmd.Flags().StringVar(&flags.PlaceType, "type", "", "Place category, e.g. cafe or restaurant.")
	cmd.Flags().StringVar(&flags.PlaceID1, "place-id1", "", "Provider place ID for the first address.")
	cmd.Flags().StringVar(&flags.PlaceID2, "place-id2", "", "Provider place ID for the second address.")
	cmd.Flags().Var(&flags.Format, "format", "Output format: json or yaml.")

	return cmd
}

func describeFindError(err error) error {
	var gerr *domain.GeocodeError
	if !errors.As(err, &gerr) {
		return fmt.Errorf("find: %w", err)
	}

	details, mErr := json.Marshal(map[string]domain.ResolveDiagnostics{
		"a1": gerr.Origin1,
		"a2": gerr.Origin2,
	})
	if mErr != nil {
		return fmt.Errorf("find: %w", err)
	}
	return fmt.Errorf("find: %w: details=%s", err, details)
}

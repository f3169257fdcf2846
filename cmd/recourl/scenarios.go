package main

import (
	"fmt"
	"slices"

	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/ignite/recommendations-email-client/internal/recoemail"
	"github.com/spf13/cobra"
)

// slotFlags are shared by every scenario command. Enum flags accept the wire
// name (MktEmail) or the constant name (MKT_EMAIL).
type slotFlags struct {
	channel   string
	emailType string
	placement string
	position  int
	alt       string
}

func (f *slotFlags) register(cmd *cobra.Command, defaultEmailType domain.EmailType) {
	fs := cmd.Flags()
	fs.StringVar(&f.channel, "channel", string(domain.ChannelMktEmail), "channel id")
	fs.StringVar(&f.emailType, "email-type", string(defaultEmailType), "email type")
	fs.StringVar(&f.placement, "placement", string(domain.PlacementHorizontal), "placement id")
	fs.IntVar(&f.position, "position", 0, "slot position, zero based")
	fs.StringVar(&f.alt, "alt", "", "image alt text for --snippet")
}

// slot parses the enum flags and normalizes emailType to its wire name.
func (f *slotFlags) slot() (recoemail.Slot, error) {
	s := recoemail.Slot{Position: f.position}
	if err := s.ChannelID.UnmarshalText([]byte(f.channel)); err != nil {
		return s, fmt.Errorf("--channel: %w", err)
	}
	if err := s.EmailType.UnmarshalText([]byte(f.emailType)); err != nil {
		return s, fmt.Errorf("--email-type: %w", err)
	}
	if err := s.PlacementID.UnmarshalText([]byte(f.placement)); err != nil {
		return s, fmt.Errorf("--placement: %w", err)
	}
	f.emailType = string(s.EmailType)
	return s, nil
}

func newKohlsCashCmd(opts *rootOptions) *cobra.Command {
	var (
		sf                   slotFlags
		amount, lower, upper float64
		email                string
	)
	cmd := &cobra.Command{
		Use:   "kohls-cash",
		Short: "URLs for a Kohl's cash offer email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := sf.slot()
			if err != nil {
				return err
			}
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			req := recoemail.KohlsCashRequest{Slot: slot, CustomerEmail: email}
			if cmd.Flags().Changed("amount") {
				req.Amount = recoemail.Float(amount)
			}
			if cmd.Flags().Changed("lower-limit") {
				req.LowerLimit = recoemail.Float(lower)
			}
			if cmd.Flags().Changed("upper-limit") {
				req.UpperLimit = recoemail.Float(upper)
			}
			urls, err := rt.generator.KohlsCashSingleRecoURLs(req)
			if err != nil {
				return err
			}
			return rt.print(cmd, urls, sf)
		},
	}
	sf.register(cmd, domain.EmailKohlsCashGeneric)
	cmd.Flags().Float64Var(&amount, "amount", 0, "Kohl's cash amount")
	cmd.Flags().Float64Var(&lower, "lower-limit", 0, "Kohl's cash lower limit")
	cmd.Flags().Float64Var(&upper, "upper-limit", 0, "Kohl's cash upper limit")
	cmd.Flags().StringVar(&email, "email", "", "customer email, sent hashed")
	return cmd
}

func newShipmentCmd(opts *rootOptions) *cobra.Command {
	var (
		sf       slotFlags
		products []string
		email    string
	)
	cmd := &cobra.Command{
		Use:   "shipment",
		Short: "URLs for a partial or complete shipment email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := sf.slot()
			if err != nil {
				return err
			}
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			urls, err := rt.generator.ShipmentSingleRecoURLs(recoemail.ShipmentRequest{
				Slot:           slot,
				ProductNumbers: products,
				CustomerEmail:  email,
			})
			if err != nil {
				return err
			}
			return rt.print(cmd, urls, sf)
		},
	}
	sf.register(cmd, domain.EmailPartialShipment)
	cmd.Flags().StringSliceVar(&products, "products", nil, "product numbers, comma separated")
	cmd.Flags().StringVar(&email, "email", "", "customer email, sent hashed")
	return cmd
}

func newPrePickupCmd(opts *rootOptions) *cobra.Command {
	var (
		sf                  slotFlags
		products, stores    []string
		email, order, atgID string
	)
	cmd := &cobra.Command{
		Use:   "pre-pickup",
		Short: "URLs for a BOPUS email sent before pickup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := sf.slot()
			if err != nil {
				return err
			}
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			urls, err := rt.generator.PrePickupBopusSingleRecoURLs(recoemail.PrePickupRequest{
				Slot:           slot,
				ProductNumbers: products,
				StoreNumbers:   stores,
				CustomerEmail:  email,
				OrderNumber:    order,
				AtgID:          atgID,
			})
			if err != nil {
				return err
			}
			return rt.print(cmd, urls, sf)
		},
	}
	sf.register(cmd, domain.EmailBopusOrderReadyForPickupSingleStore)
	cmd.Flags().StringSliceVar(&products, "products", nil, "product numbers, comma separated (required)")
	cmd.Flags().StringSliceVar(&stores, "stores", nil, "store numbers, comma separated (required)")
	cmd.Flags().StringVar(&email, "email", "", "customer email, sent hashed (required)")
	cmd.Flags().StringVar(&order, "order", "", "order number")
	cmd.Flags().StringVar(&atgID, "atg-id", "", "ATG profile id")
	return cmd
}

func newPostPickupCmd(opts *rootOptions) *cobra.Command {
	var (
		sf           slotFlags
		email, atgID string
	)
	cmd := &cobra.Command{
		Use:   "post-pickup",
		Short: "URLs for a BOPUS email sent after pickup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := sf.slot()
			if err != nil {
				return err
			}
			rt, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			urls, err := rt.generator.PostPickupBopusSingleRecoURLs(recoemail.PostPickupRequest{
				Slot:          slot,
				CustomerEmail: email,
				AtgID:         atgID,
			})
			if err != nil {
				return err
			}
			return rt.print(cmd, urls, sf)
		},
	}
	sf.register(cmd, domain.EmailBopusPickedUpConfirmationSingleStore)
	cmd.Flags().StringVar(&email, "email", "", "customer email, sent hashed (required)")
	cmd.Flags().StringVar(&atgID, "atg-id", "", "ATG profile id")
	return cmd
}

func newDecodeCCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-ccp TOKEN",
		Short: "Print the parameters carried by a ccp token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := recoemail.DecodeContext(args[0])
			if err != nil {
				return err
			}
			names := make([]string, 0, len(params))
			for name := range params {
				names = append(names, name)
			}
			slices.Sort(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, params[name])
			}
			return nil
		},
	}
}

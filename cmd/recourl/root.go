package main

import (
	"fmt"

	"github.com/ignite/recommendations-email-client/internal/config"
	"github.com/ignite/recommendations-email-client/internal/domain"
	"github.com/ignite/recommendations-email-client/internal/pkg/logger"
	"github.com/ignite/recommendations-email-client/internal/recoemail"
	"github.com/ignite/recommendations-email-client/internal/snippet"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	protocol   string
	host       string
	port       int
	snippet    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "recourl",
		Short:        "Generate recommendation URLs for Kohl's emails",
		Long:         `Builds the image and product request URLs for a single recommendation slot of a cash offer, shipment or BOPUS email.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&opts.protocol, "protocol", "", "recommendations protocol, http or https (overrides config)")
	pf.StringVar(&opts.host, "host", "", "recommendations hostname (overrides config)")
	pf.IntVar(&opts.port, "port", 0, "recommendations port, 0 leaves it out of the URL (overrides config)")
	pf.BoolVar(&opts.snippet, "snippet", false, "also print the HTML snippet for the slot")

	root.AddCommand(
		newKohlsCashCmd(opts),
		newShipmentCmd(opts),
		newPrePickupCmd(opts),
		newPostPickupCmd(opts),
		newDecodeCCPCmd(),
	)
	return root
}

// runtime is what a scenario command needs once flags and config are resolved.
type runtime struct {
	generator *recoemail.Generator
	renderer  *snippet.Renderer
}

func (o *rootOptions) setup(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.LoadFromEnv(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))

	flags := cmd.Flags()
	if flags.Changed("protocol") {
		cfg.Recommendations.Protocol = o.protocol
	}
	if flags.Changed("host") {
		cfg.Recommendations.Hostname = o.host
	}
	if flags.Changed("port") {
		cfg.Recommendations.Port = o.port
	}

	gen, err := recoemail.New(cfg.Recommendations.Protocol, cfg.Recommendations.Hostname, cfg.Recommendations.Port)
	if err != nil {
		return nil, err
	}
	rt := &runtime{generator: gen}

	if o.snippet {
		src, err := cfg.Snippet.Source()
		if err != nil {
			return nil, err
		}
		if rt.renderer, err = snippet.NewRenderer(src); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

func (rt *runtime) print(cmd *cobra.Command, urls []domain.URLResult, slot slotFlags) error {
	out := cmd.OutOrStdout()
	for _, u := range urls {
		fmt.Fprintf(out, "%s\t%s\n", u.Kind, u.URL)
	}
	if rt.renderer == nil {
		return nil
	}

	html, err := rt.renderer.Render(urls, snippet.Slot{
		EmailType: domain.EmailType(slot.emailType),
		Position:  slot.position,
		Alt:       slot.alt,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, html)
	return nil
}

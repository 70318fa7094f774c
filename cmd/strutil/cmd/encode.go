package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/msto63/strutil/foundation/core/config"
	mdwlog "github.com/msto63/strutil/foundation/core/log"
	"github.com/msto63/strutil/foundation/utils/urlx"
)

func encodeCmd(a *app) *cobra.Command {
	var (
		policyName string
		stats      bool
	)

	cmd := &cobra.Command{
		Use:   "encode [text]",
		Short: "Percent-encode text",
		Long: `Percent-encode every byte the policy does not keep.

Policies:
  component  letters, digits and -_.~ are kept
  uri        additionally keeps :/?#[]@!$&'()*+,;=
  all        every byte is escaped
  word       letters, digits and _ are kept (alias: url)

The policy defaults to encode.policy from the configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("policy") {
				policyName = a.cfg.GetString(config.KeyEncodePolicy)
			}
			policy, err := urlx.ParsePolicy(policyName)
			if err != nil {
				return err
			}

			text, err := a.inputText(args)
			if err != nil {
				return err
			}

			timer := a.logger.StartTimer("encode").WithField("policy", policy.String())
			encoded := urlx.Encode(text, policy)
			timer.Stop()

			if stats {
				escaped := (len(encoded) - len(text)) / 2
				a.logger.Info("encode stats", mdwlog.Fields{
					"input_size":  humanize.Bytes(uint64(len(text))),
					"output_size": humanize.Bytes(uint64(len(encoded))),
					"escaped":     humanize.Comma(int64(escaped)),
				})
				fmt.Fprintf(a.errOut, "%s -> %s, %s bytes escaped (%s)\n",
					humanize.Bytes(uint64(len(text))),
					humanize.Bytes(uint64(len(encoded))),
					humanize.Comma(int64(escaped)),
					policy)
			}

			return a.println(encoded)
		},
	}

	cmd.Flags().StringVarP(&policyName, "policy", "p", "component", "component, uri, all or word")
	cmd.Flags().BoolVar(&stats, "stats", false, "report input and output sizes on stderr")
	return cmd
}

func decodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode percent escapes (any policy)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.inputText(args)
			if err != nil {
				return err
			}
			decoded, err := urlx.Decode(text)
			if err != nil {
				return err
			}
			return a.println(decoded)
		},
	}
}

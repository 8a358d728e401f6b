package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/shielded-nft/internal/adapter"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/models"
)

type App struct {
	adapter   adapter.RegistryAdapter
	buildInfo models.AppBuildInfo

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

// NewApp returns a client that reads packets from in and prints results to
// out.
func NewApp(registry adapter.RegistryAdapter, buildInfo models.AppBuildInfo, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter:   registry,
		buildInfo: buildInfo,
		in:        in,
		out:       out,
		logger:    logger,
	}
}

// Usage returns the command synopsis.
func (a *App) Usage() string {
	return a.newRootCmd().UsageString()
}

// Run executes the subcommand named by args[0]. A fresh command tree is
// built per call so flag values never leak between runs.
func (a *App) Run(ctx context.Context, args []string) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(io.Discard)

	return root.ExecuteContext(ctx)
}

func (a *App) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shielded-nft",
		Short:         "shielded NFT registry client",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger.Debug().Str("func", "*App.Run").Str("command", cmd.Name()).Msg("running command")
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: no command given", ErrUsage)
			}
			return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	root.AddCommand(
		a.versionCmd(),
		a.mintCmd(),
		a.transferCmd(),
		a.viewCmd(),
		a.listCmd(),
		a.viewingKeyCmd(),
		a.stakeCmd(),
		a.unstakeCmd(),
		a.airdropCmd(),
		a.exportCmd(),
		a.importCmd(),
	)

	return root
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print client and server versions",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				a.logger.Warn().Err(err).Str("func", "*App.versionCmd").Msg("server version is unavailable")
				serverVersion = "N/A"
			}

			return printJSON(cmd, map[string]string{
				"client_version": a.buildInfo.BuildVersion(),
				"client_date":    a.buildInfo.BuildDate(),
				"client_commit":  a.buildInfo.BuildCommit(),
				"server_version": serverVersion,
			})
		},
	}
}

func (a *App) mintCmd() *cobra.Command {
	var (
		req        models.MintRequest
		attributes string
		public     bool
		maturity   uint64
	)

	cmd := &cobra.Command{
		Use:   "mint --owner ADDR --name NAME",
		Short: "mint a new asset, shielded unless --public is set",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if attributes != "" {
				req.Attributes = []byte(attributes)
			}
			if public {
				shielded := false
				req.Shielded = &shielded
			}
			if maturity > 0 {
				req.LockMaturity = models.NewMaturity(models.Maturity(maturity))
			}

			minted, err := a.adapter.Mint(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("mint: %w", err)
			}

			return printJSON(cmd, minted)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Owner, "owner", "", "owner address")
	flags.StringVar(&req.Name, "name", "", "public name")
	flags.StringVar(&req.Description, "description", "", "shielded description")
	flags.StringVar(&req.ImageCID, "image-cid", "", "shielded image content id")
	flags.StringVar(&attributes, "attributes", "", "shielded attributes blob")
	flags.BoolVar(&public, "public", false, "store metadata unshielded")
	flags.Uint64Var(&maturity, "maturity", 0, "lock maturity in epochs")

	return cmd
}

func (a *App) transferCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transfer ID NEW_OWNER",
		Short: "move an unlocked asset to a new owner",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.AssetID(args[0])
			if err := a.adapter.Transfer(cmd.Context(), id, args[1]); err != nil {
				return fmt.Errorf("transfer: %w", err)
			}

			return printJSON(cmd, models.StatusResponse{Status: "ok", ID: id})
		},
	}
}

func (a *App) viewCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "view ID",
		Short: "show an asset, revealing shielded fields for a valid viewing key",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nft, err := a.adapter.View(cmd.Context(), models.AssetID(args[0]), models.ViewingKey(key))
			if err != nil {
				return fmt.Errorf("view: %w", err)
			}

			return printJSON(cmd, nft)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "viewing key")

	return cmd
}

func (a *App) listCmd() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "list public projections of assets",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			nfts, err := a.adapter.List(cmd.Context(), owner)
			if err != nil {
				return fmt.Errorf("list: %w", err)
			}

			return printJSON(cmd, models.ListResponse{NFTs: nfts})
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "owner address")

	return cmd
}

func (a *App) viewingKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "viewing-key ID OWNER",
		Short: "issue a viewing key to the current owner",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := a.adapter.IssueViewingKey(cmd.Context(), models.AssetID(args[0]), args[1])
			if err != nil {
				return fmt.Errorf("viewing-key: %w", err)
			}

			return printJSON(cmd, models.ViewingKeyResponse{ViewingKey: key})
		},
	}
}

func (a *App) stakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stake ID",
		Short: "lock an asset",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.AssetID(args[0])
			if err := a.adapter.Stake(cmd.Context(), id); err != nil {
				return fmt.Errorf("stake: %w", err)
			}

			return printJSON(cmd, models.StatusResponse{Status: "staked", ID: id})
		},
	}
}

func (a *App) unstakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unstake ID",
		Short: "unlock a staked asset",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.AssetID(args[0])
			if err := a.adapter.Unstake(cmd.Context(), id); err != nil {
				return fmt.Errorf("unstake: %w", err)
			}

			return printJSON(cmd, models.StatusResponse{Status: "unstaked", ID: id})
		},
	}
}

func (a *App) airdropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "airdrop ID RECIPIENT...",
		Short: "mint a copy of an asset for every recipient",
		Args:  minimumArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.adapter.Airdrop(cmd.Context(), models.AssetID(args[0]), args[1:])
			if err != nil {
				return fmt.Errorf("airdrop: %w", err)
			}

			return printJSON(cmd, result)
		},
	}
}

// exportCmd writes the raw packet to --output, or prints it when no file
// is given.
func (a *App) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "export the full record of an asset as a packet",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := models.AssetID(args[0])
			packet, err := a.adapter.Export(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(packet)))
				return err
			}

			if err = os.WriteFile(output, packet, 0o600); err != nil {
				return fmt.Errorf("error writing packet to %s: %w", output, err)
			}
			return printJSON(cmd, models.StatusResponse{Status: "exported", ID: id})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")

	return cmd
}

// importCmd reads the packet from a file, or from stdin when the argument
// is "-".
func (a *App) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE|-",
		Short: "import a packet produced by export",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				packet []byte
				err    error
			)
			if args[0] == "-" {
				packet, err = io.ReadAll(cmd.InOrStdin())
			} else {
				packet, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("error reading packet: %w", err)
			}

			id, err := a.adapter.Import(cmd.Context(), packet)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			return printJSON(cmd, models.StatusResponse{Status: "imported", ID: id})
		},
	}
}

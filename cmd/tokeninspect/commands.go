package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jrsteele09/go-oauth-sdk/internal/config"
	ierrors "github.com/jrsteele09/go-oauth-sdk/internal/errors"
	"github.com/jrsteele09/go-oauth-sdk/oauth"
	"github.com/jrsteele09/go-oauth-sdk/resource"
	"github.com/jrsteele09/go-oauth-sdk/resource/filestore"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

func newRootCmd(c config.Config) *cobra.Command {
	var storeFile string
	var banner bool

	root := &cobra.Command{
		Use:           "tokeninspect",
		Short:         "Inspect OAuth token resources held in a resource snapshot",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// DEBUG=true or --debug
			if viper.GetBool("debug") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			if banner {
				displayAppname(c.GetAppName())
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&storeFile, "store", c.GetStoreFile(), "resource snapshot file")
	root.PersistentFlags().BoolVar(&banner, "banner", false, "print the application banner")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	_ = viper.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))

	open := func() (*filestore.FileStore, error) {
		return filestore.Open(storeFile, c.GetBaseURL())
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "show <href>",
			Short: "Print the properties of a token resource",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := open()
				if err != nil {
					return err
				}
				token, err := oauth.Get(cmd.Context(), store, args[0])
				if err != nil {
					return err
				}
				printToken(cmd.OutOrStdout(), token)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <accessTokens|refreshTokens> <file.json>",
			Short: "Add a token resource to the snapshot",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := open()
				if err != nil {
					return err
				}
				props, err := readProperties(args[1])
				if err != nil {
					return err
				}
				href, err := addToken(cmd, store, args[0], props)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), href)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <href>",
			Short: "Delete a token resource from the snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				store, err := open()
				if err != nil {
					return err
				}
				token, err := oauth.Get(cmd.Context(), store, args[0])
				if err != nil {
					if ierrors.Is(err, resource.ErrNotFound) {
						log.Warn().Str("href", args[0]).Msg("token not found")
					}
					return err
				}
				if err := token.Delete(cmd.Context()); err != nil {
					return err
				}
				log.Info().Str("href", args[0]).Str("kind", token.Kind().String()).Msg("token deleted")
				return nil
			},
		},
	)
	return root
}

// addToken validates props as a token of the collection's kind before saving it.
func addToken(cmd *cobra.Command, store *filestore.FileStore, collection string, props resource.Properties) (string, error) {
	var kind oauth.Kind
	switch collection {
	case "accessTokens":
		kind = oauth.KindAccessToken
		_, err := oauth.NewAccessToken(store, props)
		if err != nil {
			return "", err
		}
	case "refreshTokens":
		kind = oauth.KindRefreshToken
		_, err := oauth.NewRefreshToken(store, props)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown token collection %q", collection)
	}
	href, err := store.Save(cmd.Context(), collection, props)
	if err != nil {
		return "", ierrors.Wrapf(err, "saving %s", kind)
	}
	log.Debug().Str("href", href).Str("kind", kind.String()).Msg("token added")
	return href, nil
}

func readProperties(path string) (resource.Properties, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var props resource.Properties
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, ierrors.Wrapf(err, "decoding %s", path)
	}
	return props, nil
}

func printToken(w io.Writer, token oauth.Token) {
	fmt.Fprintf(w, "href:        %s\n", token.Href())
	fmt.Fprintf(w, "kind:        %s\n", token.Kind())
	if created := token.CreatedAt(); !created.IsZero() {
		fmt.Fprintf(w, "created:     %s\n", created.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "account:     %s\n", token.AccountHref())
	fmt.Fprintf(w, "application: %s\n", token.ApplicationHref())
	fmt.Fprintf(w, "tenant:      %s\n", token.TenantHref())

	expanded, err := token.ExpandedJWT()
	if err != nil {
		if !ierrors.Is(err, oauth.ErrNoJWT) {
			log.Warn().Err(err).Str("href", token.Href()).Msg("jwt could not be decoded")
		}
		return
	}
	fmt.Fprintf(w, "subject:     %s\n", expanded.Subject())
	fmt.Fprintf(w, "issuer:      %s\n", expanded.Issuer())
	if scope := expanded.Scope(); len(scope) > 0 {
		fmt.Fprintf(w, "scope:       %s\n", strings.Join(scope, " "))
	}
	if exp, ok := expanded.ExpiresAt(); ok {
		fmt.Fprintf(w, "expires:     %s\n", exp.Format(time.RFC3339))
		fmt.Fprintf(w, "expired:     %t\n", NowTimeFunc().After(exp))
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netfetch/netfetch/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "netfetch",
	Short: "Stream remote resources through external downloader tools",
	Long: `netfetch streams HTTP(S) resources through an external downloader
(wget, with fallback to curl), the way network-free audio players fetch
remote streams: the tool runs as a worker process and its stdout — the
raw response header block followed by the body — is piped back.

Common workflows:

  Stream a radio station to a file:
    netfetch get http://radio.example:8000/live -H 'Icy-MetaData: 1' -o live.mp3

  Force a specific backend:
    netfetch get --backend curl https://example.org/track.ogg

  See which downloader tools are installed:
    netfetch backends

Configuration:
  Defaults are read from ~/.config/netfetch/config.toml and overridden
  by environment variables and flags:
    NETFETCH_BACKEND    selection policy: auto, wget or curl
    NETFETCH_AUTH       "user:password" HTTP credential

Proxies are configured through the standard http_proxy, https_proxy and
ftp_proxy environment variables, which the downloader tools honor on
their own.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/netfetch/config.toml)")
	rootCmd.PersistentFlags().String("backend", "", "backend policy: auto, wget or curl")
	rootCmd.PersistentFlags().String("auth", "", `"user:password" HTTP credential`)
	rootCmd.PersistentFlags().String("user-agent", "", "override the client identification token")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "keep backend diagnostics on stderr")

	_ = viper.BindPFlag("backend", rootCmd.PersistentFlags().Lookup("backend"))
	_ = viper.BindPFlag("auth", rootCmd.PersistentFlags().Lookup("auth"))
	_ = viper.BindPFlag("user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Read environment variables that match "NETFETCH_VARNAME".
	viper.SetEnvPrefix("NETFETCH")
	viper.AutomaticEnv()
}

// initConfig seeds viper defaults from the config file; env variables
// and flags take precedence over it.
func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "netfetch: config:", err)
		return
	}
	viper.SetDefault("backend", cfg.Backend)
	viper.SetDefault("auth", cfg.Auth)
	viper.SetDefault("user_agent", cfg.UserAgent)
	viper.SetDefault("verbose", cfg.Verbose)
}

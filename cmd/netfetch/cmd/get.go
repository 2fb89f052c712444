package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netfetch/netfetch"
)

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Stream one resource and write its body",
	Long: `Stream a remote resource through the selected downloader backend.

The worker's output starts with the raw response header block; by default
it is stripped the way a player would strip it, and only the body is
written. Use --with-headers to keep the block.

Example:
  netfetch get http://radio.example:8000/live -H 'Icy-MetaData: 1' -o live.mp3
  netfetch get --backend wget --auth alice:s3cret https://example.org/feed.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringArrayP("header", "H", nil, `extra request header line ("Name: value"), repeatable`)
	getCmd.Flags().StringP("output", "o", "-", "output file (- for stdout)")
	getCmd.Flags().Bool("with-headers", false, "keep the raw response header block in the output")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	headers, _ := cmd.Flags().GetStringArray("header")
	output, _ := cmd.Flags().GetString("output")
	withHeaders, _ := cmd.Flags().GetBool("with-headers")
	verbose := viper.GetBool("verbose")

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	client := netfetch.New(
		netfetch.WithPolicy(viper.GetString("backend")),
		netfetch.WithCredential(viper.GetString("auth")),
		netfetch.WithUserAgent(viper.GetString("user_agent")),
		netfetch.WithVerbose(verbose),
		netfetch.WithLogger(logger),
	)

	stream, err := client.Open(args[0], headers)
	if err != nil {
		return err
	}
	defer stream.Close()

	var w io.Writer = cmd.OutOrStdout()
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	br := bufio.NewReader(stream)
	if !withHeaders {
		headerLines, err := readHeaderBlock(br)
		if err != nil {
			return fmt.Errorf("no response from backend: %w", err)
		}
		for _, line := range headerLines {
			logger.Debug("response header", "line", line)
		}
	}

	if _, err := io.Copy(w, br); err != nil {
		return fmt.Errorf("stream body: %w", err)
	}
	return nil
}

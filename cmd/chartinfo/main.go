package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/shiroemons/go-chartread/internal/chartinfo/app"
	"github.com/shiroemons/go-chartread/internal/chartinfo/config"
)

func newRootCmd() *cobra.Command {
	var flags *config.Flags

	cmd := &cobra.Command{
		Use:     "chartinfo [flags] <chart file>",
		Short:   "Summarize a .chart rhythm-game chart file",
		Version: config.Version,
		Args:    cobra.ExactArgs(1),
		// 使用方法はエラー時に表示しない
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Resolve(cmd.Flags(), args[0])
			if err != nil {
				return err
			}

			// アプリケーションの実行
			return app.New(cfg).Run(cmd.Context())
		},
	}

	flags = config.BindFlags(cmd.Flags())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// armora prices close-protection bookings and recommends service tiers from
// the command line.
//
// Usage:
//
//	armora <command> [flags]
//
// Commands: tiers, quote, venue, recommend, quiz.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/armora/quote/internal/catalog"
	"github.com/armora/quote/internal/config"
	"github.com/armora/quote/internal/observability"
	"github.com/armora/quote/internal/pricing"
	"github.com/armora/quote/internal/quiz"
	"github.com/armora/quote/internal/quote"
	"github.com/armora/quote/internal/recommendation"
	"github.com/armora/quote/internal/venue"
	"github.com/armora/quote/pkg/telemetry/correlation"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 || isHelp(args[0]) {
		printUsage(stdout)
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}

	var svc services
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		catalog.Module,
		pricing.Module,
		venue.Module,
		recommendation.Module,
		quiz.Module,
		quote.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		fx.Populate(&svc),
	)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	cmdErr := execute(context.Background(), cmd, svc, args[1:], stdout)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		return errors.Join(cmdErr, err)
	}
	return cmdErr
}

// execute runs cmd under one correlation id shared by every log line and span
// the command produces. A configured id is reused, otherwise one is minted.
func execute(ctx context.Context, cmd command, svc services, args []string, stdout io.Writer) error {
	ctx = correlation.Start(correlation.WithID(ctx, svc.Config.CorrelationID))
	return cmd.run(ctx, svc, args, stdout)
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

func isHelp(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: armora <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}
}

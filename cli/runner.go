package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/callback/config"
	"github.com/viant/callback/factory"
	"github.com/viant/callback/schema"
)

// Run parses args and runs the selected command.
func Run(args []string) error {
	return RunContext(context.Background(), args, os.Stdout)
}

// RunContext runs the selected command writing user-facing output to stdout.
func RunContext(ctx context.Context, args []string, stdout io.Writer) error {
	options := &Options{}
	parser := flags.NewParser(options, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		return err
	}
	if parser.Active == nil {
		return fmt.Errorf("missing command")
	}
	cfg, err := config.Load(ctx, options.ConfigURL)
	if err != nil {
		return err
	}
	switch parser.Active.Name {
	case "serve":
		cfg.Merge(&options.Serve.Config)
		return serve(ctx, cfg)
	case "uri":
		cfg.Merge(&config.Config{Origin: options.URI.Origin})
		_, err = fmt.Fprintln(stdout, factory.Build(cfg.Origin, options.URI.Request.toRequest()))
		return err
	case "redeem":
		cfg.Merge(&options.Redeem.Config)
		return redeem(ctx, cfg, options.Redeem.Request.toRequest(), stdout)
	}
	return fmt.Errorf("unsupported command: %v", parser.Active.Name)
}

func (r *Request) toRequest() schema.Request {
	ret := schema.Request{ID: r.ID, Path: r.Path, Query: r.Query, Fragment: r.Fragment}
	if ret.ID == "" {
		ret.ID = schema.NewID()
	}
	return ret
}

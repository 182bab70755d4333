package cli

import "github.com/viant/callback/config"

// Options are the command line options.
type Options struct {
	ConfigURL string        `short:"c" long:"config" description:"config URL (yaml or json)"`
	Serve     ServeCommand  `command:"serve" description:"run the callback server"`
	URI       URICommand    `command:"uri" description:"print a callback URI"`
	Redeem    RedeemCommand `command:"redeem" description:"print a callback URI and wait for its result"`
}

// ServeCommand runs the server.
type ServeCommand struct {
	config.Config
}

// URICommand prints a callback URI.
type URICommand struct {
	Origin string `short:"o" long:"origin" description:"origin serving the callback endpoints"`
	Request
}

// RedeemCommand prints a callback URI and polls for its result.
type RedeemCommand struct {
	config.Config
	Request
}

// Request carries the callback request fields.
type Request struct {
	ID       string `short:"i" long:"id" description:"callback identifier; generated when empty"`
	Path     string `short:"p" long:"path" description:"path to return"`
	Query    string `short:"q" long:"query" description:"query to return"`
	Fragment string `short:"f" long:"fragment" description:"fragment to return"`
}

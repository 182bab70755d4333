// Package callback provides high-level helpers for redeeming deep-link
// callback URIs.
//
// A client builds a callback URI for an identifier, hands it to an external
// party (for example an OAuth provider opened in a browser tab) and polls the
// server until the URI has been visited. The server records the visit and
// hands the resulting URI back exactly once.
//
// The package glues the lower-level packages together from a config.Config:
//  1. NewServer – returns the server serving /callback and /fetch-callback
//  2. NewClient – returns a client building URIs and redeeming them
//
// Example:
//
//	srv := callback.NewServer(cfg, logger)
//	go srv.HTTP(cfg.Listen).ListenAndServe()
//
//	cli, _ := callback.NewClient(cfg, logger)
//	cli.OnCallback(func(uri *url.URL) { fmt.Println(uri) })
//	URI, session, _ := cli.CreateURI(ctx, schema.Request{ID: schema.NewID()})
package callback

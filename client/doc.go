// Package client redeems callback URIs from the client side.
//
// A Service ties together the three steps of a redemption:
//   - URI builds the callback URI for a request (no side effects)
//   - Redeem polls the origin's fetch-callback endpoint for the identifier
//   - OnCallback subscribes to the URIs the poller receives
//
// CreateURI performs the first two in one call.
//
// Example:
//
//	svc, _ := client.New("https://editor.example.com")
//	svc.OnCallback(func(uri *url.URL) { open(uri) })
//	URI, session, _ := svc.CreateURI(ctx, schema.Request{ID: schema.NewID(), Path: "/did-authenticate"})
//	openBrowser(URI)
//	outcome, _ := session.Wait(ctx)
package client

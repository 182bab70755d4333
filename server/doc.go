// Package server exposes the server half of the callback exchange.
//
// It mounts two endpoints on a chi router:
//   - GET /callback records the URI carried by the query for its vscode-id
//   - GET /fetch-callback returns the URIs recorded for a vscode-id as a JSON
//     array, or an empty body when nothing has arrived yet
//
// Results are kept by a pending.Manager, in memory or in any afs location.
//
//	s := server.New(pending.NewManager(pending.NewMemoryStore(), 0, nil))
//	log.Fatal(s.HTTP(":8080").ListenAndServe())
package server

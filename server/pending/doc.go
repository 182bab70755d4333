// Package pending keeps callback results on the server until the client
// fetches them.
//
// A visit to the callback endpoint appends URI components to the pending
// entry of its identifier; a fetch takes (removes and returns) everything
// recorded so far. Entries expire after a TTL so that results nobody fetches
// do not accumulate.
package pending

// Package poller redeems callback URIs by polling the fetch-callback endpoint.
//
// A Session fetches once, and while the response body is empty and the
// timeout has not elapsed it waits for the interval and fetches again. The
// first non-empty body ends the session: it is decoded as a JSON array of URI
// components and every entry is published in order. A body that cannot be
// decoded is logged once and also ends the session.
//
// Transport failures and non-2xx responses are logged and retried like an
// empty body. A session can be stopped early with Session.Cancel or by
// cancelling the context passed to Start.
package poller

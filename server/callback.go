package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/viant/callback/factory"
	"github.com/viant/callback/schema"
	"go.uber.org/zap"
)

const closePage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Callback received</title></head>
<body><p>You can close this page and return to the editor.</p></body>
</html>
`

// idExtractor extracts a callback identifier from the request.
type idExtractor func(r *http.Request) (string, error)

func queryID(r *http.Request) (string, error) {
	id := r.URL.Query().Get(schema.KeyID)
	if id == "" {
		return "", factory.ErrMissingID
	}
	return id, nil
}

// withID resolves the identifier and hands it to next. A missing identifier
// is a client error; an error returned by next is a server error.
func withID(extract idExtractor, next func(ctx context.Context, id string, w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := extract(r)
		if err != nil || id == "" {
			http.Error(w, "invalid callback id", http.StatusBadRequest)
			return
		}
		if err := next(r.Context(), id, w, r); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Callback records the URI carried by the request for its identifier.
func (s *Service) Callback(w http.ResponseWriter, r *http.Request) {
	withID(queryID, s.callback)(w, r)
}

func (s *Service) callback(ctx context.Context, id string, w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	request, err := factory.Parse(query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	components := schema.URIComponents{
		Scheme:    firstNonEmpty(query.Get(schema.KeyScheme), s.scheme),
		Authority: firstNonEmpty(query.Get(schema.KeyAuthority), s.authority),
		Path:      request.Path,
		Query:     request.Query,
		Fragment:  request.Fragment,
	}
	if components.Scheme == "" {
		http.Error(w, "missing "+schema.KeyScheme, http.StatusBadRequest)
		return nil
	}
	if _, err = s.manager.Record(ctx, id, components); err != nil {
		s.logger.Error("failed to record callback", zap.String("id", id), zap.Error(err))
		return errors.New("failed to record callback")
	}
	s.logger.Debug("callback recorded", zap.String("id", id), zap.String("uri", components.String()))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(closePage))
	return nil
}

// FetchCallback returns, and forgets, the URIs recorded for the identifier.
// Nothing recorded yet yields an empty body.
func (s *Service) FetchCallback(w http.ResponseWriter, r *http.Request) {
	withID(queryID, s.fetchCallback)(w, r)
}

func (s *Service) fetchCallback(ctx context.Context, id string, w http.ResponseWriter, r *http.Request) error {
	items, err := s.manager.Take(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch callback", zap.String("id", id), zap.Error(err))
		return errors.New("failed to fetch callback")
	}
	w.Header().Set("Cache-Control", "no-store")
	if len(items) == 0 {
		w.WriteHeader(http.StatusOK)
		return nil
	}
	data, err := schema.EncodeResult(items)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package ai

import "net/http"

func valueOrDefault(value string, def string) string {
	if value == "" {
		return def
	}
	return value
}

// headerTransport adds fixed headers (e.g. OpenRouter attribution) to every request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) > 0 {
		req = req.Clone(req.Context())
		for key, value := range t.headers {
			req.Header.Set(key, value)
		}
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func withHeaders(client *http.Client, headers map[string]string) *http.Client {
	if len(headers) == 0 {
		return client
	}
	wrapped := *client
	wrapped.Transport = &headerTransport{base: client.Transport, headers: headers}
	return &wrapped
}

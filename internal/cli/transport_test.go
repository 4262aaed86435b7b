package cli

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestHandlerTransportClosesRequestBody(t *testing.T) {
	transport := handlerTransport{handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})}
	body := &closeRecorder{Reader: strings.NewReader(`{"words":["hi"]}`)}

	req, err := http.NewRequest(http.MethodPut, "http://local/api/v1/dictionaries/test", body)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.True(t, body.closed)
	assert.Same(t, req, resp.Request)
}

package paypal

import (
	"net/http"
	"testing"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/core"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	called bool
	req    *http.Request
	resp   *http.Response
	err    error
}

func (f *fakeTransport) Do(req *http.Request) (*http.Response, error) {
	f.called = true
	f.req = req
	return f.resp, f.err
}

func TestNew_UsesInjectedHTTPClient(t *testing.T) {
	cfg := &core.PayPalConfig{
		ClientID:     "id",
		ClientSecret: "secret",
		Mode:         "sandbox",
	}

	fd := &fakeTransport{}

	svc, err := New(cfg, Options{
		HTTPClient: fd,
	})
	require.NoError(t, err)

	impl, ok := svc.(*service)
	require.True(t, ok, "New should return *service implementation")
	require.Same(t, cfg, impl.cfg, "should preserve cfg pointer")
	require.Same(t, fd, impl.client, "should use injected HTTP client")
}

func TestNew_BaseURLFollowsMode(t *testing.T) {
	sandbox, err := New(&core.PayPalConfig{ClientID: "id", ClientSecret: "s", Mode: "sandbox"}, Options{})
	require.NoError(t, err)
	require.Equal(t, sandboxAPIBase, sandbox.(*service).apiBase)

	live, err := New(&core.PayPalConfig{ClientID: "id", ClientSecret: "s", Mode: "live"}, Options{})
	require.NoError(t, err)
	require.Equal(t, liveAPIBase, live.(*service).apiBase)
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)

	_, err = New(&core.PayPalConfig{ClientSecret: "s"}, Options{})
	require.Error(t, err)

	_, err = New(&core.PayPalConfig{ClientID: "id"}, Options{})
	require.Error(t, err)
}

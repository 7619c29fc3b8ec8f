// FILE: remote.go
package debug

import (
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"
)

// postRemote delivers the structured payload to the remote endpoint.
// Strictly best-effort: timeouts, refused connections, and non-2xx
// responses are all discarded, and the caller is never blocked.
func (l *Logger) postRemote(url string, timeout time.Duration, payload *Payload) {
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBodyRaw(body)

	_ = l.client.DoTimeout(req, resp, timeout)
}

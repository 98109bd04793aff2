package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the adapter can use the full resty API
// while sharing one configured transport.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client. A zero timeout keeps resty's
// default and a positive retries value enables resty's backoff retry.
//
//	client := utils.NewHTTPClient(30*time.Second, 2)
func NewHTTPClient(timeout time.Duration, retries int) *HTTPClient {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	if retries > 0 {
		client.SetRetryCount(retries).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second)
	}
	return &HTTPClient{Client: client}
}

package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-env-keeper/internal/app"
)

var gzipReaders = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZipRequests inflates gzip-encoded request bodies. Responses are
// compressed separately by chi's Compress middleware.
func withGZipRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr := gzipReaders.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaders.Put(zr)
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		defer func() {
			zr.Close()
			gzipReaders.Put(zr)
		}()

		r.Body = zr
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1
		next.ServeHTTP(w, r)
	})
}

// hideMethodNotAllowed answers 404 for a known path requested with an
// unsupported method, so the route stays hidden.
func hideMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	http.NotFound(w, r)
}

package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// encodingPreference orders the codings the server can produce, best first.
var encodingPreference = []string{"zstd", "br", "gzip"}

// withCompression negotiates a Content-Encoding from the request's
// Accept-Encoding header and streams the response through the matching
// compressor. Requests that accept none of our codings pass through
// untouched.
func withCompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
		if encoding == "" {
			next.ServeHTTP(w, r)
			return
		}

		cw, err := newCompressingWriter(w, encoding)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		defer cw.Close()

		w.Header().Set("Content-Encoding", encoding)
		w.Header().Add("Vary", "Accept-Encoding")

		next.ServeHTTP(&compressedResponseWriter{ResponseWriter: w, compressor: cw}, r)
	})
}

// compressedResponseWriter routes the body through the compressor while
// headers and status codes keep going to the underlying writer.
type compressedResponseWriter struct {
	http.ResponseWriter
	compressor io.Writer
}

func (w *compressedResponseWriter) Write(p []byte) (int, error) {
	return w.compressor.Write(p)
}

func newCompressingWriter(w io.Writer, encoding string) (io.WriteCloser, error) {
	switch encoding {
	case "zstd":
		return zstd.NewWriter(w)
	case "br":
		return brotli.NewWriter(w), nil
	default:
		return gzip.NewWriter(w), nil
	}
}

// negotiateEncoding picks the best coding both sides understand. Quality
// values are ignored: any listed coding counts as acceptable, matching the
// lenient parsing on the client side.
func negotiateEncoding(header string) string {
	if header == "" {
		return ""
	}

	offered := make(map[string]bool)
	for _, part := range strings.Split(header, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		name, _, _ := strings.Cut(token, ";")
		offered[strings.ToLower(strings.TrimSpace(name))] = true
	}

	for _, encoding := range encodingPreference {
		if offered[encoding] {
			return encoding
		}
	}
	return ""
}

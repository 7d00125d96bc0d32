package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_CapturesStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *responseWriter)
		wantStatus int
		wantBytes  int64
	}{
		{
			name:       "nothing written keeps 200",
			write:      func(*responseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "first WriteHeader wins",
			write:      func(rw *responseWriter) { rw.WriteHeader(http.StatusFound); rw.WriteHeader(http.StatusTeapot) },
			wantStatus: http.StatusFound,
		},
		{
			name:       "write implies 200",
			write:      func(rw *responseWriter) { _, _ = rw.Write([]byte("signed in")) },
			wantStatus: http.StatusOK,
			wantBytes:  9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			rw := newResponseWriter(rec)
			tt.write(rw)

			if rw.statusCode != tt.wantStatus {
				t.Errorf("statusCode = %d, want %d", rw.statusCode, tt.wantStatus)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("recorder Code = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rw.written != tt.wantBytes {
				t.Errorf("written = %d, want %d", rw.written, tt.wantBytes)
			}
		})
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)

	if rw.Unwrap() != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}

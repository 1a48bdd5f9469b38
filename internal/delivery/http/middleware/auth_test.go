package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	subject string
	err     error
}

func (f *fakeVerifier) Verify(token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifier   *fakeVerifier
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "valid token",
			header:     "Bearer good-token",
			verifier:   &fakeVerifier{subject: "ops"},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
		{
			name:       "missing header",
			header:     "",
			verifier:   &fakeVerifier{subject: "ops"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic abc123",
			verifier:   &fakeVerifier{subject: "ops"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			verifier:   &fakeVerifier{subject: "ops"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer bad-token",
			verifier:   &fakeVerifier{err: fmt.Errorf("invalid token")},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nextCalled bool
			var gotSubject string
			next := func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotSubject, _ = SubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodPost, "/runs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			RequireAuth(tt.verifier)(next)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, tt.verifier.subject, gotSubject)
			}
			if tt.wantStatus == http.StatusUnauthorized {
				var resp struct {
					Error *struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				require.NotNil(t, resp.Error)
				assert.Equal(t, "unauthorized", resp.Error.Code)
			}
		})
	}
}

func TestSubjectFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SubjectFromContext(req.Context())
	assert.False(t, ok)
}

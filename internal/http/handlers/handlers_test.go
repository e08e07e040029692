package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-quizo/internal/models"
)

func TestDecodeStrict(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"ok", `{"username":"t1","password":"p1"}`, false},
		{"unknown field", `{"username":"t1","password":"p1","role":"admin"}`, true},
		{"trailing object", `{"username":"t1"}{"username":"t2"}`, true},
		{"malformed", `{"username":`, true},
		{"empty", ``, true},
		{"too large", `{"username":"` + strings.Repeat("a", maxBodyBytes) + `"}`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tc.body))

			var in models.LoginRequest
			err := decodeStrict(rr, req, &in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "t1", in.Username)
		})
	}
}

func TestWriteOK_Envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	writeOK(rr, http.StatusCreated, "Quiz created successfully", map[string]string{"id": "1"})

	require.Equal(t, http.StatusCreated, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	require.JSONEq(t, `{"success":true,"message":"Quiz created successfully","data":{"id":"1"}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	writeOK(rr, http.StatusOK, "", nil)
	require.JSONEq(t, `{"success":true}`, rr.Body.String())
}

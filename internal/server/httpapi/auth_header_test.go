package httpapi

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"missing", "", "", errMissingAuthorization},
		{"blank", "   ", "", errMissingAuthorization},
		{"wrong scheme", "Basic abc.def.ghi", "", errBadAuthorization},
		{"prefix only", "Bearer ", "", errBadAuthorization},
		{"not a jwt", "Bearer sometoken", "", errBadAuthorization},
		{"too many segments", "Bearer a.b.c.d", "", errBadAuthorization},
		{"ok", "Bearer aaa.bbb.ccc", "aaa.bbb.ccc", nil},
		{"ok with padding", "  Bearer aaa.bbb.ccc  ", "aaa.bbb.ccc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set(echo.HeaderAuthorization, tt.header)
			}

			got, err := bearerTokenFromHeader(h)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

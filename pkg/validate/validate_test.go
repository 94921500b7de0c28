package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"omitempty,email"`
	Mode     string `json:"mode" validate:"omitempty,oneof=light dark"`
}

func TestIsIP(t *testing.T) {
	tests := []struct {
		ip   string
		want bool
	}{
		{"203.0.113.7", true},
		{"2001:db8::1", true},
		{"203.0.113", false},
		{"localhost", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIP(tt.ip))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		message string
	}{
		{name: "valid", body: `{"username":"budi","email":"budi@example.com"}`},
		{name: "malformed", body: `{"username":`, wantErr: true, message: badBodyMessage},
		{name: "missing username", body: `{}`, wantErr: true, message: "username wajib diisi"},
		{name: "short username", body: `{"username":"ab"}`, wantErr: true, message: "username minimal 3 karakter"},
		{name: "bad email", body: `{"username":"budi","email":"nope"}`, wantErr: true, message: "Format email tidak valid"},
		{name: "bad mode", body: `{"username":"budi","mode":"pink"}`, wantErr: true, message: "mode harus salah satu dari: light dark"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			var dst credentials
			err := DecodeJSON(req, &dst)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "budi", dst.Username)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.message, Message(err))
		})
	}
}

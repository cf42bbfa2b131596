// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/storehub/internal/users/auth"
)

// TestNormalizeEmail pins simple lower-casing: ß is kept, not folded to ss.
func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"ascii", "  Customer@X.COM ", "customer@x.com"},
		{"accented", "ÉLODIE@x.com", "élodie@x.com"},
		{"sharp_s", "Straße@x.com", "straße@x.com"},
		{"already_normal", "cso1@x.com", "cso1@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.NormalizeEmail(tt.email))
		})
	}
}

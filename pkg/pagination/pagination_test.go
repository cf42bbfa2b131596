// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: 1, Limit: DefaultLimit}},
		{"?page=3&limit=10", Params{Page: 3, Limit: 10}},
		{"?page=0&limit=-4", Params{Page: 1, Limit: DefaultLimit}},
		{"?page=abc", Params{Page: 1, Limit: DefaultLimit}},
		{"?limit=5000", Params{Page: 1, Limit: MaxLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/officers"+tt.query, nil)
			assert.Equal(t, tt.want, FromRequest(request))
		})
	}
}

func TestParams_OffsetAndMeta(t *testing.T) {
	params := Params{Page: 3, Limit: 10}
	assert.Equal(t, 20, params.Offset())
	assert.Equal(t, Meta{Page: 3, Limit: 10, Total: 21, TotalPages: 3}, params.Meta(21))

	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 0, NewMeta(1, 0, 5).TotalPages)
}

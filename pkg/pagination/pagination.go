// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination parses page/limit query parameters for back-office list
// endpoints and builds the "meta" block of the response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
	DefaultPage  = 1
)

// Params is a 1-indexed page request.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET for the page.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta builds the response metadata for a result set of total rows.
func (p Params) Meta(total int) Meta {
	return NewMeta(p.Page, p.Limit, total)
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

/*
FromRequest reads "page" and "limit" from the query string.

Unparseable or non-positive values fall back to the defaults; a limit above
[MaxLimit] is capped rather than reset.
*/
func FromRequest(request *http.Request) Params {
	query := request.URL.Query()

	page := positiveInt(query.Get("page"), DefaultPage)
	limit := min(positiveInt(query.Get("limit"), DefaultLimit), MaxLimit)

	return Params{Page: page, Limit: limit}
}

func positiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/taibuivan/storehub/internal/platform/config"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

// Redirector resolves the landing path for an authenticated principal.
type Redirector struct {
	admin           string
	officerFallback string
	userDefault     string
	byRole          map[sec.RoleTag]string
}

// NewRedirector builds the routing table from configuration.
func NewRedirector(cfg config.RedirectConfig) *Redirector {
	return &Redirector{
		admin:           cfg.Admin,
		officerFallback: cfg.OfficerFallback,
		userDefault:     cfg.UserDefault,
		byRole: map[sec.RoleTag]string{
			sec.RoleAccessComplaints: cfg.Complaints,
			sec.RoleAccessOfficers:   cfg.Officers,
			sec.RoleAccessPayments:   cfg.Payments,
			sec.RoleAccessUnits:      cfg.Units,
			sec.RoleAccessWarehouses: cfg.Warehouses,
		},
	}
}

/*
Resolve returns the post-login path for a principal.

Description: Admins land on analytics, officers on the section of their
function role, users on the requested deep link when it is a safe local path.

Parameters:
  - principal: *Principal
  - next: string (caller-supplied deep link, may be empty)

Returns:
  - string: Local path to redirect to
*/
func (redirector *Redirector) Resolve(principal *Principal, next string) string {
	switch principal.Kind {
	case sec.KindAdmin:
		return redirector.admin
	case sec.KindOfficer:
		if path, ok := redirector.byRole[sec.RoleTag(principal.Role)]; ok {
			return path
		}
		return redirector.officerFallback
	default:
		if IsSafeDeepLink(next) {
			return next
		}
		return redirector.userDefault
	}
}

// IsSafeDeepLink reports whether next is a same-origin absolute path.
// Protocol-relative URLs, backslashes, schemes and control characters are rejected.
func IsSafeDeepLink(next string) bool {
	if next == "" || len(next) > maxDeepLinkLength {
		return false
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return false
	}
	if strings.IndexFunc(next, unicode.IsControl) >= 0 {
		return false
	}

	parsed, err := url.Parse(next)
	if err != nil {
		return false
	}
	return parsed.Scheme == "" && parsed.Host == "" && parsed.User == nil
}

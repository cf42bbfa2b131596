// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import "time"

// Identity is the per-request view of an authenticated session.
//
// The session middleware places it in the request context; handlers read it
// through ctxutil.GetIdentity. It is rebuilt on every request and never shared.
type Identity struct {
	SessionID    string        `json:"-"`
	Kind         PrincipalKind `json:"kind"`
	PrincipalID  int64         `json:"id,omitempty"`
	Name         string        `json:"name,omitempty"`
	Email        string        `json:"email"`
	Role         string        `json:"role"`
	FunctionName string        `json:"function,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// IsAdmin reports whether the identity belongs to the configured administrator.
func (identity *Identity) IsAdmin() bool {
	return identity != nil && identity.Kind == KindAdmin
}

// CanAccess reports whether the identity may enter the section guarded by tag.
// The administrator passes every gate; officers need the exact function tag.
func (identity *Identity) CanAccess(tag RoleTag) bool {
	if identity == nil {
		return false
	}
	if identity.Kind == KindAdmin {
		return true
	}
	return identity.Kind == KindOfficer && RoleTag(identity.Role) == tag
}

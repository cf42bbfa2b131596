// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package officer manages CSO officers and the functions they belong to.
//
// Officer rows are what the login gateway authenticates against; toggling an
// officer or its function off blocks that officer's next login.
package officer

import (
	"context"
	"time"

	"github.com/taibuivan/storehub/internal/platform/sec"
)

// Function groups officers under one back-office role tag.
type Function struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Role     sec.RoleTag `json:"role"`
	IsActive bool        `json:"is_active"`
}

// Officer is the admin view of a CSO officer. The password hash is never exposed.
type Officer struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	FunctionID   int64       `json:"function_id"`
	FunctionName string      `json:"function_name"`
	Role         sec.RoleTag `json:"role"`
	IsActive     bool        `json:"is_active"`
	LastLoginAt  *time.Time  `json:"last_login_at,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// CreateInput is the validated new-officer form.
type CreateInput struct {
	Name       string
	Email      string
	Password   string
	FunctionID int64
}

// Repository is the persistence contract for officers and functions.
type Repository interface {
	ListFunctions(context context.Context) ([]*Function, error)
	SetFunctionActive(context context.Context, id int64, active bool) error

	ListOfficers(context context.Context, limit, offset int) ([]*Officer, int, error)
	CreateOfficer(context context.Context, officer *Officer, passwordHash string) error
	SetOfficerActive(context context.Context, id int64, active bool) error
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package officer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/storehub/internal/platform/sec"
	"github.com/taibuivan/storehub/internal/users/auth"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListFunctions(context context.Context) ([]*Function, error) {
	return service.repo.ListFunctions(context)
}

func (service *Service) SetFunctionActive(context context.Context, id int64, active bool) error {
	if err := service.repo.SetFunctionActive(context, id, active); err != nil {
		return err
	}

	service.logger.InfoContext(context, "function_active_changed",
		slog.Int64("function_id", id),
		slog.Bool("is_active", active),
	)
	return nil
}

func (service *Service) ListOfficers(context context.Context, limit, offset int) ([]*Officer, int, error) {
	return service.repo.ListOfficers(context, limit, offset)
}

/*
CreateOfficer hashes the password with bcrypt and stores an active officer.

Parameters:
  - context: context.Context
  - input: CreateInput (validated by the handler)

Returns:
  - *Officer: Stored officer with its function details
  - error: apperr.Conflict on duplicate email, apperr.ValidationError on unknown function
*/
func (service *Service) CreateOfficer(context context.Context, input CreateInput) (*Officer, error) {
	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("officer_service_hash_failed: %w", err)
	}

	officer := &Officer{
		Name:       strings.TrimSpace(input.Name),
		Email:      auth.NormalizeEmail(input.Email),
		FunctionID: input.FunctionID,
	}

	if err := service.repo.CreateOfficer(context, officer, passwordHash); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "officer_created",
		slog.Int64("officer_id", officer.ID),
		slog.String("role", string(officer.Role)),
	)
	return officer, nil
}

func (service *Service) SetOfficerActive(context context.Context, id int64, active bool) error {
	if err := service.repo.SetOfficerActive(context, id, active); err != nil {
		return err
	}

	service.logger.InfoContext(context, "officer_active_changed",
		slog.Int64("officer_id", id),
		slog.Bool("is_active", active),
	)
	return nil
}

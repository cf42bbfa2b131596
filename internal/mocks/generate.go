// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package mocks provides gomock implementations of the storage ports.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./...
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	users := mocks.NewMockUserStore(ctrl)
//	users.EXPECT().FindUser(gomock.Any(), "customer@x.com").Return(record, nil)
package mocks

// Auth stores are generated from source by the directive in internal/users/auth/store.go.

// Generate mocks for the customer account ports:
// AccountRepository, VerificationTokenRepository, VerificationNotifier
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=account_mock.go github.com/taibuivan/storehub/internal/users/account AccountRepository,VerificationNotifier,VerificationTokenRepository

// Generate MockOfficerRepository for the CSO staff repository.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=officer_repository_mock.go -mock_names=Repository=MockOfficerRepository github.com/taibuivan/storehub/internal/staff/officer Repository

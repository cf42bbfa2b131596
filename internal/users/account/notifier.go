// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"
	"net/url"
)

// LogNotifier writes verification links to the structured log.
//
// It stands in for the SMTP sender, which lives outside this service.
type LogNotifier struct {
	logger   *slog.Logger
	linkBase string
}

// NewLogNotifier creates a [LogNotifier]. linkBase is the verification page path.
func NewLogNotifier(logger *slog.Logger, linkBase string) *LogNotifier {
	return &LogNotifier{logger: logger, linkBase: linkBase}
}

// SendVerification logs the verification link for the account.
func (notifier *LogNotifier) SendVerification(context context.Context, account *Account, token string) error {
	link := notifier.linkBase + "?" + url.Values{FieldToken: {token}}.Encode()

	notifier.logger.InfoContext(context, "account_verification_link_issued",
		slog.Int64("account_id", account.ID),
		slog.String("link", link),
	)

	return nil
}

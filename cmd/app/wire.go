//go:build wireinject
// +build wireinject

package main

import (
	"simpleeval/config"
	"simpleeval/internal/command"
	"simpleeval/internal/cron"
	"simpleeval/internal/database"
	"simpleeval/internal/handler"
	"simpleeval/internal/mail"
	"simpleeval/internal/middleware"
	"simpleeval/internal/router"
	"simpleeval/internal/service"
	"simpleeval/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			mail.NewMailer,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			telemetry.ProviderSet,
			mail.NewMailer,
			cron.NewReminderJob,
			command.ProviderSet,
		),
	)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/purchase-forwarder/api"
	"github.com/carson-networks/purchase-forwarder/internal/config"
	"github.com/carson-networks/purchase-forwarder/internal/logging"
	"github.com/carson-networks/purchase-forwarder/internal/secrets"
	"github.com/carson-networks/purchase-forwarder/internal/service"
	"github.com/carson-networks/purchase-forwarder/internal/ynab"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("purchase-forwarder starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err := logging.SetLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.SetLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir, err := secrets.LoadDirectory(ctx, envConfig, secrets.DefaultStore)
	if err != nil {
		logrus.WithError(err).Fatal("secrets.LoadDirectory")
		return
	}
	logrus.WithField("directory", dir.String()).Info("directory loaded")

	client := ynab.NewClient(context.Background(), ynab.ClientConfig{
		APIURL:      envConfig.YNABAPIURL,
		AccessToken: dir.AccessToken,
		Timeout:     envConfig.YNABTimeout,
	})
	svc := service.NewService(dir, client)

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logrus.WithError(err).Fatal("api.Rest.Serve")
	}
}

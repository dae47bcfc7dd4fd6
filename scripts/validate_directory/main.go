package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/purchase-forwarder/internal/config"
	"github.com/carson-networks/purchase-forwarder/internal/directory"
	"github.com/carson-networks/purchase-forwarder/internal/mapping"
	"github.com/carson-networks/purchase-forwarder/internal/secrets"
)

func main() {
	if err := newApp(secrets.DefaultStore).Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("validate_directory")
	}
}

func newApp(newStore secrets.StoreFactory) *cli.App {
	return &cli.App{
		Name:  "validate_directory",
		Usage: "validate a budget directory and optionally dry-run one purchase against it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "YAML directory file; defaults to the server's configured source",
			},
			&cli.StringFlag{Name: "amount", Usage: "purchase amount, e.g. $6.22"},
			&cli.StringFlag{Name: "card", Usage: "card name"},
			&cli.StringFlag{Name: "merchant", Usage: "merchant name"},
			&cli.StringFlag{Name: "date", Usage: "purchase date, e.g. 2025-01-01"},
		},
		Action: func(c *cli.Context) error {
			dir, err := loadDirectory(c.Context, c.String("file"), newStore)
			if err != nil {
				return err
			}

			out := c.App.Writer
			logrus.WithFields(logrus.Fields{
				"accounts":  len(dir.Accounts),
				"merchants": len(dir.Merchants),
			}).Info("directory is valid")
			fmt.Fprintln(out, dir.String())
			spew.Fdump(out, dir.Accounts, dir.Merchants)

			if c.String("card") == "" && c.String("merchant") == "" {
				return nil
			}
			return dryRun(out, dir, mapping.Purchase{
				Amount:   c.String("amount"),
				Card:     c.String("card"),
				Merchant: c.String("merchant"),
				Date:     c.String("date"),
			})
		},
	}
}

func loadDirectory(ctx context.Context, path string, newStore secrets.StoreFactory) (*directory.Directory, error) {
	if path != "" {
		return directory.LoadFile(path)
	}

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, err
	}
	return secrets.LoadDirectory(ctx, env, newStore)
}

func dryRun(out io.Writer, dir *directory.Directory, purchase mapping.Purchase) error {
	transaction, err := mapping.MapTransaction(dir, purchase)
	if err != nil {
		return fmt.Errorf("dry run: %w", err)
	}

	if transaction.NeedsCategorization() {
		logrus.Warnf("%s needs to be categorized", purchase.Merchant)
	}
	spew.Fdump(out, transaction)
	return nil
}

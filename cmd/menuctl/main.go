// Command menuctl administers a menuboard database: units, plans and the
// first accounts, without going through the HTTP API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/config"
	"menuboard/internal/infra"
	"menuboard/internal/repositories"
	"menuboard/internal/services"
	"menuboard/pkg/utils"
)

// deps is what the database-backed commands need.
type deps struct {
	units    services.UnitServiceInterface
	accounts services.AccountServiceInterface
	close    func()
}

func newDeps(db *gorm.DB, log *zap.Logger) *deps {
	units := services.NewUnitService(repositories.NewUnitRepository(db), log)
	// menuctl never signs tokens
	tokens := utils.NewTokenIssuer("", time.Minute)
	return &deps{
		units:    units,
		accounts: services.NewAccountService(repositories.NewAccountRepository(db), units, tokens, log),
		close:    func() {},
	}
}

func openDatabase() (*deps, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, err
	}
	log, err := infra.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		infra.ClosePostgresql(db, log)
		return nil, fmt.Errorf("migrate: %w", err)
	}

	d := newDeps(db, log)
	d.close = func() {
		infra.ClosePostgresql(db, log)
		_ = log.Sync()
	}
	return d, nil
}

func newRootCmd(open func() (*deps, error)) *cobra.Command {
	root := &cobra.Command{
		Use:           "menuctl",
		Short:         "Administer menuboard units and accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newUnitCmd(open),
		newAccountCmd(open),
		newWeekCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd(openDatabase).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

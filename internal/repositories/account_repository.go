package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"menuboard/internal/models/db_models"
)

// UnitHeadcount is the number of accounts attached to a unit, split by the
// role the plan limits care about.
type UnitHeadcount struct {
	Users      int64
	UnitAdmins int64
}

type AccountRepository interface {
	// InsertChecked counts the unit's accounts and runs check against the
	// result inside one transaction; the account is only inserted when check
	// returns nil.
	InsertChecked(ctx context.Context, account *db_models.UserAccount, check func(UnitHeadcount) error) error
	FindById(ctx context.Context, id uuid.UUID) (*db_models.UserAccount, error)
	FindByUsername(ctx context.Context, username string) (*db_models.UserAccount, error)
	ListByUnit(ctx context.Context, unitID uuid.UUID) ([]db_models.UserAccount, error)
	ListAll(ctx context.Context) ([]db_models.UserAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) InsertChecked(ctx context.Context, account *db_models.UserAccount, check func(UnitHeadcount) error) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serialise account creation per unit on Postgres by locking the unit row.
		if tx.Dialector.Name() == "postgres" {
			var unit db_models.Unit
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&unit, "id = ?", account.UnitID).Error
			if err != nil {
				return err
			}
		}

		counts, err := countByUnit(tx, account.UnitID)
		if err != nil {
			return err
		}
		if err := check(counts); err != nil {
			return err
		}

		return tx.Create(account).Error
	})
}

func (a *accountRepository) FindById(ctx context.Context, id uuid.UUID) (*db_models.UserAccount, error) {
	var account db_models.UserAccount
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) FindByUsername(ctx context.Context, username string) (*db_models.UserAccount, error) {
	var account db_models.UserAccount
	err := a.db.WithContext(ctx).First(&account, "username = ?", username).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &account, nil
}

func (a *accountRepository) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]db_models.UserAccount, error) {
	var accounts []db_models.UserAccount
	err := a.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order("username ASC").
		Find(&accounts).Error
	return accounts, err
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.UserAccount, error) {
	var accounts []db_models.UserAccount
	err := a.db.WithContext(ctx).Order("username ASC").Find(&accounts).Error
	return accounts, err
}

func (a *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := a.db.WithContext(ctx).Delete(&db_models.UserAccount{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func countByUnit(db *gorm.DB, unitID uuid.UUID) (UnitHeadcount, error) {
	var counts UnitHeadcount
	err := db.Model(&db_models.UserAccount{}).
		Where("unit_id = ?", unitID).
		Count(&counts.Users).Error
	if err != nil {
		return UnitHeadcount{}, err
	}

	err = db.Model(&db_models.UserAccount{}).
		Where("unit_id = ? AND role = ?", unitID, db_models.RoleUnitAdmin).
		Count(&counts.UnitAdmins).Error
	if err != nil {
		return UnitHeadcount{}, err
	}
	return counts, nil
}

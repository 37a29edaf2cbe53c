package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"menuboard/internal/models/db_models"
	"menuboard/internal/models/request_models"
	"menuboard/internal/models/response_models"
	"menuboard/internal/policy"
	"menuboard/internal/repositories"
	"menuboard/pkg/utils"
)

type AccountServiceInterface interface {
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error)
	CreateAccount(ctx context.Context, actor policy.Actor, request request_models.CreateAccountRequest) (*response_models.AccountResponse, error)
	// ListAccounts lists one unit's accounts. An empty unit means every
	// account for admins and the actor's own unit for everyone else.
	ListAccounts(ctx context.Context, actor policy.Actor, unit string) ([]response_models.AccountResponse, error)
	DeleteAccount(ctx context.Context, actor policy.Actor, id uuid.UUID) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	unitService UnitServiceInterface
	tokens      *utils.TokenIssuer
	logger      *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, unitService UnitServiceInterface, tokens *utils.TokenIssuer, logger *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		unitService: unitService,
		tokens:      tokens,
		logger:      logger,
	}
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AccountLoginResponse, error) {
	account, err := a.accountRepo.FindByUsername(ctx, strings.TrimSpace(request.Username))
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.CredentialRef, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, string(account.Role), account.UnitID)
	if err != nil {
		a.logger.Error("token signing failed", zap.String("account", account.ID.String()), zap.Error(err))
		return nil, utils.ErrInvalidCredentials
	}

	resp := &response_models.AccountLoginResponse{
		Token:  token,
		Role:   string(account.Role),
		UnitID: account.UnitID.String(),
	}
	if unit, err := a.unitService.GetUnit(ctx, account.UnitID); err == nil {
		resp.Unit = unit.Name
	}

	a.logger.Info("login", zap.String("username", account.Username), zap.String("role", string(account.Role)))
	return resp, nil
}

func (a *AccountService) CreateAccount(ctx context.Context, actor policy.Actor, request request_models.CreateAccountRequest) (*response_models.AccountResponse, error) {
	role, err := db_models.ParseRole(request.Role)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAssignRole(actor, role); err != nil {
		return nil, err
	}

	username := strings.TrimSpace(request.Username)
	if username == "" {
		return nil, utils.ErrMissingField
	}

	unit, err := a.targetUnit(ctx, actor, request.Unit)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(actor, policy.ActionManageUsers, unit.ID); err != nil {
		return nil, err
	}

	existing, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrUsernameAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &db_models.UserAccount{
		Username:      username,
		CredentialRef: hashedPassword,
		DisplayName:   strings.TrimSpace(request.DisplayName),
		Role:          role,
		UnitID:        unit.ID,
	}

	err = a.accountRepo.InsertChecked(ctx, account, func(current repositories.UnitHeadcount) error {
		return policy.CanCreateUser(unit.Plan, policy.Headcount{
			Users:      current.Users,
			UnitAdmins: current.UnitAdmins,
		}, role).Err()
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrPlanLimitReached):
			a.logger.Info("account refused by plan", zap.String("unit", unit.Name), zap.Error(err))
			return nil, err
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, utils.ErrUsernameAlreadyExists
		}
		a.logger.Error("account insert failed", zap.String("unit", unit.Name), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	a.logger.Info("account created",
		zap.String("username", account.Username),
		zap.String("role", string(account.Role)),
		zap.String("unit", unit.Name))

	resp := toAccountResponse(*account)
	return &resp, nil
}

// targetUnit resolves the unit an account is created in. Only admins may
// bring a new unit into existence this way.
func (a *AccountService) targetUnit(ctx context.Context, actor policy.Actor, name string) (*db_models.Unit, error) {
	unit, err := a.unitService.LookupUnit(ctx, name)
	if err != nil {
		return nil, err
	}
	if unit != nil {
		return unit, nil
	}
	if strings.TrimSpace(name) == "" {
		return nil, utils.ErrMissingField
	}
	if !actor.IsAdmin() {
		return nil, utils.ErrUnitNotFound
	}

	id, ok := a.unitService.ResolveUnitID(ctx, name)
	if !ok {
		return nil, utils.ErrDatabaseError
	}
	return a.unitService.GetUnit(ctx, id)
}

func (a *AccountService) ListAccounts(ctx context.Context, actor policy.Actor, unit string) ([]response_models.AccountResponse, error) {
	var (
		accounts []db_models.UserAccount
		err      error
	)

	switch {
	case unit == "" && actor.IsAdmin():
		accounts, err = a.accountRepo.ListAll(ctx)
	case unit == "":
		if err := policy.Authorize(actor, policy.ActionManageUsers, actor.UnitID); err != nil {
			return nil, err
		}
		accounts, err = a.accountRepo.ListByUnit(ctx, actor.UnitID)
	default:
		found, lookupErr := a.unitService.LookupUnit(ctx, unit)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if found == nil {
			return nil, utils.ErrUnitNotFound
		}
		if err := policy.Authorize(actor, policy.ActionManageUsers, found.ID); err != nil {
			return nil, err
		}
		accounts, err = a.accountRepo.ListByUnit(ctx, found.ID)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, toAccountResponse(account))
	}
	return result, nil
}

func (a *AccountService) DeleteAccount(ctx context.Context, actor policy.Actor, id uuid.UUID) error {
	account, err := a.accountRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		return utils.ErrAccountNotFound
	}

	if err := policy.Authorize(actor, policy.ActionManageUsers, account.UnitID); err != nil {
		return err
	}
	if err := policy.CanAssignRole(actor, account.Role); err != nil {
		return err
	}

	if err := a.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrAccountNotFound
		}
		return utils.ErrDatabaseError
	}

	a.logger.Info("account deleted", zap.String("username", account.Username))
	return nil
}

func toAccountResponse(account db_models.UserAccount) response_models.AccountResponse {
	return response_models.AccountResponse{
		ID:          account.ID.String(),
		Username:    account.Username,
		DisplayName: account.DisplayName,
		Role:        string(account.Role),
		UnitID:      account.UnitID.String(),
	}
}

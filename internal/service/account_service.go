package service

import (
	"context"
	"time"

	"github.com/alimikegami/storefront/internal/domain"
	"github.com/alimikegami/storefront/internal/dto"
	"github.com/alimikegami/storefront/internal/repository"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/alimikegami/storefront/pkg/errs"
)

type AccountServiceImpl struct {
	repo repository.StorefrontRepository
}

func CreateNewAccountService(repo repository.StorefrontRepository) AccountService {
	return &AccountServiceImpl{repo: repo}
}

// SignUp registers a new account and signs it in. Email uniqueness is a
// case-sensitive exact match against the stored list. The password is kept as
// entered; this demo deliberately has no credential hardening.
func (s *AccountServiceImpl) SignUp(ctx context.Context, payload dto.SignUpRequest) (res domain.Account, err error) {
	accounts := s.repo.GetAccounts(ctx)

	for _, account := range accounts {
		if account.Email == payload.Email {
			return res, errs.ErrEmailAlreadyUsed
		}
	}

	timestamp := time.Now().UnixMilli()
	res = domain.Account{
		ID:         timestamp,
		ExternalID: ulid.Make().String(),
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		Address:    payload.Address,
		Password:   payload.Password,
		CreatedAt:  timestamp,
	}

	if err = s.repo.SaveAccounts(ctx, append(accounts, res)); err != nil {
		log.Error().Err(err).Str("component", "SignUp").Msg("")
		return
	}

	if err = s.repo.SaveActiveAccount(ctx, res, payload.Remember); err != nil {
		log.Error().Err(err).Str("component", "SignUp").Msg("")
		return
	}

	return res, nil
}

// LogIn matches email and password exactly, in plaintext, and signs the
// matching account in.
func (s *AccountServiceImpl) LogIn(ctx context.Context, payload dto.LogInRequest) (res domain.Account, err error) {
	for _, account := range s.repo.GetAccounts(ctx) {
		if account.Email == payload.Email && account.Password == payload.Password {
			if err = s.repo.SaveActiveAccount(ctx, account, payload.Remember); err != nil {
				log.Error().Err(err).Str("component", "LogIn").Msg("")
				return
			}
			return account, nil
		}
	}

	return res, errs.ErrInvalidCredentials
}

// ActiveAccount reports the signed-in account, if any. At process start this
// doubles as session restore: only a remembered session has a durable record
// to come back from. There is no logout operation in this design.
func (s *AccountServiceImpl) ActiveAccount(ctx context.Context) (res domain.Account, found bool) {
	return s.repo.GetActiveAccount(ctx)
}

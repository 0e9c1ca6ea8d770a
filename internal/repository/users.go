package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tobi-adeyemi/extractflow/gen/ent"
	"github.com/tobi-adeyemi/extractflow/gen/ent/user"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
)

type UserRepository interface {
	// Create provisions a user with a zero balance. Credits are granted
	// through the ledger so every balance change has a transaction row.
	Create(ctx context.Context, email string) (*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewUserRepository(entc *ent.Client, log *slog.Logger) UserRepository {
	if log == nil {
		log = slog.Default()
	}
	return &userRepo{ent: entc, log: log}
}

func (r *userRepo) Create(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.ent.User.
		Create().
		SetEmail(email).
		Save(ctx)
	if err != nil {
		r.log.Error("user create failed", "email", email, "err", err)
		return nil, err
	}
	r.log.Info("user created", "user_id", u.ID, "email", email)
	return toUserEntity(u), nil
}

func (r *userRepo) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.ent.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(u), nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := r.ent.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(u), nil
}

func toUserEntity(u *ent.User) *entity.User {
	return &entity.User{
		ID:            u.ID,
		Email:         u.Email,
		CreditBalance: u.CreditBalance,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

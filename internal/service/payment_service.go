package service

import (
	"context"

	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
	"github.com/d60-Lab/socialnet/internal/store"
)

// PaymentService 余额转账（打赏）与账本
type PaymentService interface {
	Tip(ctx context.Context, caller, recipient model.UserID, amount uint64) error
	GetBalance(ctx context.Context, id model.UserID) uint64
	Credit(ctx context.Context, id model.UserID, amount uint64) error
	ListTransactions(ctx context.Context, caller model.UserID) []*model.Transaction
}

type paymentService struct {
	store *store.Store
}

func NewPaymentService(s *store.Store) PaymentService { return &paymentService{store: s} }

func (s *paymentService) Tip(ctx context.Context, caller, recipient model.UserID, amount uint64) error {
	if caller == model.Anonymous {
		return errs.Unauthenticated("anonymous users cannot send tips")
	}
	if amount == 0 {
		return errs.Conflict("tip amount must be greater than 0")
	}
	if caller == recipient {
		return errs.Conflict("cannot tip yourself")
	}
	return s.store.Tip(caller, recipient, amount)
}

func (s *paymentService) GetBalance(ctx context.Context, id model.UserID) uint64 {
	return s.store.Balance(id)
}

// Credit 管理性充值路径；授权在边界层完成
func (s *paymentService) Credit(ctx context.Context, id model.UserID, amount uint64) error {
	return s.store.Credit(id, amount)
}

func (s *paymentService) ListTransactions(ctx context.Context, caller model.UserID) []*model.Transaction {
	return s.store.TransactionsFor(caller)
}

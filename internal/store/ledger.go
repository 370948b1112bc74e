package store

import (
	"github.com/d60-Lab/socialnet/internal/errs"
	"github.com/d60-Lab/socialnet/internal/model"
)

// Tip 同一次加锁内完成借记、贷记与账本追加；失败时不留下任何部分写入
func (s *Store) Tip(from, to model.UserID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.users[from]
	if !ok {
		return errs.NotFound("one or both users not found")
	}
	recipient, ok := s.users[to]
	if !ok {
		return errs.NotFound("one or both users not found")
	}
	if sender.Balance < amount {
		return errs.InsufficientBalance("insufficient balance")
	}

	sender.Balance -= amount
	recipient.Balance += amount
	s.transactions = append(s.transactions,
		model.NewTransaction(model.TransactionTip, from, to, amount, s.clock.Now()))
	return nil
}

// Balance 未知用户返回 0 而非错误：余额查询是咨询性的
func (s *Store) Balance(id model.UserID) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[id]; ok {
		return u.Balance
	}
	return 0
}

// Credit 管理性充值，账本类型为 reward
func (s *Store) Credit(id model.UserID, amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return errs.NotFound("user not found")
	}
	u.Balance += amount
	s.transactions = append(s.transactions,
		model.NewTransaction(model.TransactionReward, id, id, amount, s.clock.Now()))
	return nil
}

// TransactionsFor 该用户作为转出或转入方的账本条目，追加顺序
func (s *Store) TransactionsFor(id model.UserID) []*model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*model.Transaction
	for _, tx := range s.transactions {
		if tx.From == id || tx.To == id {
			c := *tx
			res = append(res, &c)
		}
	}
	return res
}

package model

import (
	"fmt"
	"time"
)

// TransactionType 转账类型
type TransactionType string

const (
	TransactionTip    TransactionType = "tip"
	TransactionReward TransactionType = "reward"
)

// Transaction 账本条目：已完成转账的记录，追加后不再修改
type Transaction struct {
	ID        string          `json:"id"`
	From      UserID          `json:"from"`
	To        UserID          `json:"to"`
	Amount    uint64          `json:"amount"`
	Type      TransactionType `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
}

func NewTransaction(kind TransactionType, from, to UserID, amount uint64, now time.Time) *Transaction {
	owner := from
	if kind == TransactionReward {
		owner = to
	}
	return &Transaction{
		ID:        fmt.Sprintf("%s_%s_%d", kind, owner, now.UnixNano()),
		From:      from,
		To:        to,
		Amount:    amount,
		Type:      kind,
		Timestamp: now,
	}
}

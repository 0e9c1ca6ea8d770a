package server

import (
	"context"
	"log/slog"
	"time"

	extractflowpb "github.com/tobi-adeyemi/extractflow/gen/proto/extractflow/v1"
	"github.com/tobi-adeyemi/extractflow/internal/ledger"
)

const defaultHistoryLimit = 50

type LedgerService struct {
	extractflowpb.UnimplementedLedgerServiceServer
	ledger *ledger.Service
	logger *slog.Logger
}

func NewLedgerService(svc *ledger.Service, logger *slog.Logger) *LedgerService {
	return &LedgerService{ledger: svc, logger: logger}
}

func (s *LedgerService) GetBalance(ctx context.Context, req *extractflowpb.GetBalanceRequest) (*extractflowpb.GetBalanceResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		s.logger.Error("balance lookup failed", "user_id", userID, "error", err)
		return nil, toStatusError(err)
	}
	return &extractflowpb.GetBalanceResponse{Balance: int32(balance)}, nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, req *extractflowpb.ListTransactionsRequest) (*extractflowpb.ListTransactionsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	txs, err := s.ledger.History(ctx, userID, limit)
	if err != nil {
		s.logger.Error("transaction history failed", "user_id", userID, "error", err)
		return nil, toStatusError(err)
	}
	out := make([]*extractflowpb.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, &extractflowpb.Transaction{
			Id:           tx.ID.String(),
			Type:         string(tx.Type),
			CreditsDelta: int32(tx.CreditsDelta),
			Status:       string(tx.Status),
			Description:  tx.Description,
			CreatedAt:    tx.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	return &extractflowpb.ListTransactionsResponse{Transactions: out}, nil
}

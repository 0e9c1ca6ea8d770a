package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/tobi-adeyemi/extractflow/constants"
	extractflowpb "github.com/tobi-adeyemi/extractflow/gen/proto/extractflow/v1"
	"github.com/tobi-adeyemi/extractflow/internal/cleanup"
	"github.com/tobi-adeyemi/extractflow/internal/ledger"
	"github.com/tobi-adeyemi/extractflow/internal/repository"
	"github.com/tobi-adeyemi/extractflow/internal/sessions"
)

// AdminService bundles the operational hooks: account provisioning, TTL
// acceleration for testing expiry behavior, on-demand cleanup sweeps, free
// reprocessing of failed sessions and manual ledger adjustments.
type AdminService struct {
	extractflowpb.UnimplementedAdminServiceServer
	users   repository.UserRepository
	manager *sessions.Service
	ledger  *ledger.Service
	engine  *cleanup.Engine
	logger  *slog.Logger
}

func NewAdminService(users repository.UserRepository, manager *sessions.Service, ledger *ledger.Service, engine *cleanup.Engine, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminService{users: users, manager: manager, ledger: ledger, engine: engine, logger: logger}
}

func (s *AdminService) CreateUser(ctx context.Context, req *extractflowpb.CreateUserRequest) (*extractflowpb.CreateUserResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if req.GetStartingCredits() < 0 {
		return nil, status.Error(codes.InvalidArgument, "starting_credits cannot be negative")
	}
	u, err := s.users.Create(ctx, req.GetEmail())
	if err != nil {
		s.logger.Error("user provisioning failed", "email", req.GetEmail(), "error", err)
		return nil, toStatusError(err)
	}
	// The user starts at zero; the grant goes through the ledger so the
	// balance always has a backing transaction row.
	balance := 0
	if n := int(req.GetStartingCredits()); n > 0 {
		if _, err := s.ledger.Credit(ctx, u.ID, n, constants.TxTypeBonus, "starting credit grant"); err != nil {
			s.logger.Error("starting credit grant failed", "user_id", u.ID, "error", err)
			return nil, toStatusError(err)
		}
		balance = n
	}
	return &extractflowpb.CreateUserResponse{
		UserId:  u.ID.String(),
		Balance: int32(balance),
	}, nil
}

func (s *AdminService) AccelerateExpiry(ctx context.Context, req *extractflowpb.AccelerateExpiryRequest) (*extractflowpb.AccelerateExpiryResponse, error) {
	sessionID, err := parseUUID("session_id", req.GetSessionId())
	if err != nil {
		return nil, err
	}
	expiresAt, err := time.Parse(time.RFC3339, req.GetExpiresAt())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "expires_at invalid (RFC 3339): %v", err)
	}
	if err := s.manager.AccelerateExpiry(ctx, sessionID, expiresAt); err != nil {
		s.logger.Error("accelerate expiry failed", "session_id", sessionID, "error", err)
		return nil, toStatusError(err)
	}
	return &extractflowpb.AccelerateExpiryResponse{}, nil
}

func (s *AdminService) ReprocessSession(ctx context.Context, req *extractflowpb.ReprocessSessionRequest) (*extractflowpb.ReprocessSessionResponse, error) {
	sessionID, err := parseUUID("session_id", req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if err := s.manager.Reprocess(ctx, sessionID); err != nil {
		s.logger.Error("reprocess failed", "session_id", sessionID, "error", err)
		return nil, toStatusError(err)
	}
	return &extractflowpb.ReprocessSessionResponse{}, nil
}

func (s *AdminService) RunCleanup(ctx context.Context, _ *extractflowpb.RunCleanupRequest) (*extractflowpb.RunCleanupResponse, error) {
	run, err := s.engine.Sweep(ctx)
	if err != nil {
		s.logger.Error("on-demand cleanup failed", "error", err)
		return nil, toStatusError(err)
	}
	return &extractflowpb.RunCleanupResponse{
		SessionsExpired: int32(run.SessionsExpired),
		JobsExpired:     int32(run.JobsExpired),
		BlobsDeleted:    int32(run.BlobsDeleted),
		ErrorCount:      int32(run.ErrorCount),
		Status:          string(run.Status),
	}, nil
}

func (s *AdminService) AdjustCredits(ctx context.Context, req *extractflowpb.AdjustCreditsRequest) (*extractflowpb.AdjustCreditsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	if req.GetReason() == "" {
		return nil, status.Error(codes.InvalidArgument, "reason is required")
	}
	tx, err := s.ledger.AdminAdjust(ctx, userID, int(req.GetDelta()), req.GetReason())
	if err != nil {
		s.logger.Error("credit adjustment failed", "user_id", userID, "delta", req.GetDelta(), "error", err)
		return nil, toStatusError(err)
	}
	s.logger.Info("credits adjusted", "user_id", userID, "delta", req.GetDelta(), "tx_id", tx.ID)
	return &extractflowpb.AdjustCreditsResponse{TransactionId: tx.ID.String()}, nil
}

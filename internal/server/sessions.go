package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	extractflowpb "github.com/tobi-adeyemi/extractflow/gen/proto/extractflow/v1"
	"github.com/tobi-adeyemi/extractflow/internal/common"
	"github.com/tobi-adeyemi/extractflow/internal/entity"
	"github.com/tobi-adeyemi/extractflow/internal/ingest"
	"github.com/tobi-adeyemi/extractflow/internal/sessions"
)

type SessionService struct {
	extractflowpb.UnimplementedSessionServiceServer
	manager *sessions.Service
	logger  *slog.Logger
}

func NewSessionService(manager *sessions.Service, logger *slog.Logger) *SessionService {
	return &SessionService{manager: manager, logger: logger}
}

func (s *SessionService) CreateSession(ctx context.Context, req *extractflowpb.CreateSessionRequest) (*extractflowpb.CreateSessionResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	if len(req.GetFiles()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one file is required")
	}

	uploads := make([]ingest.Upload, 0, len(req.GetFiles()))
	for _, f := range req.GetFiles() {
		if f.GetFilename() == "" {
			return nil, status.Error(codes.InvalidArgument, "every file needs a filename")
		}
		if len(f.GetContent()) == 0 {
			return nil, status.Errorf(codes.InvalidArgument, "file %s is empty", f.GetFilename())
		}
		uploads = append(uploads, ingest.Upload{Filename: f.GetFilename(), Content: f.GetContent()})
	}

	session, err := s.manager.Create(ctx, userID, uploads,
		json.RawMessage(req.GetNamingTemplate()), json.RawMessage(req.GetExportColumns()))
	if err != nil {
		s.logger.Error("create session failed", "user_id", userID, "files", len(uploads), "error", err)
		return nil, toStatusError(err)
	}
	s.logger.Info("session created",
		"request_id", common.RequestIDFromContext(ctx),
		"session_id", session.ID,
		"user_id", userID,
		"total_units", session.TotalUnits,
	)

	return &extractflowpb.CreateSessionResponse{
		SessionId:  session.ID.String(),
		TotalUnits: int32(session.TotalUnits),
		ExpiresAt:  session.ExpiresAt.Format(time.RFC3339Nano),
	}, nil
}

func (s *SessionService) GetSessionStatus(ctx context.Context, req *extractflowpb.GetSessionStatusRequest) (*extractflowpb.GetSessionStatusResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	sessionID, err := parseUUID("session_id", req.GetSessionId())
	if err != nil {
		return nil, err
	}

	// Ownership first, then the derived rollup.
	if _, err := s.manager.Get(ctx, userID, sessionID); err != nil {
		return nil, toStatusError(err)
	}
	report, err := s.manager.AggregateStatus(ctx, sessionID)
	if err != nil {
		s.logger.Error("session status aggregation failed", "session_id", sessionID, "error", err)
		return nil, toStatusError(err)
	}

	return &extractflowpb.GetSessionStatusResponse{
		Status:         string(report.Status),
		ProcessedUnits: int32(report.ProcessedUnits),
		TotalUnits:     int32(report.TotalUnits),
		Error:          report.Error,
	}, nil
}

func (s *SessionService) ListSessions(ctx context.Context, req *extractflowpb.ListSessionsRequest) (*extractflowpb.ListSessionsResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	list, err := s.manager.List(ctx, userID)
	if err != nil {
		s.logger.Error("list sessions failed", "user_id", userID, "error", err)
		return nil, toStatusError(err)
	}
	out := make([]*extractflowpb.Session, 0, len(list))
	for i := range list {
		out = append(out, toPBSession(&list[i]))
	}
	return &extractflowpb.ListSessionsResponse{Sessions: out}, nil
}

func (s *SessionService) CancelSession(ctx context.Context, req *extractflowpb.CancelSessionRequest) (*extractflowpb.CancelSessionResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	sessionID, err := parseUUID("session_id", req.GetSessionId())
	if err != nil {
		return nil, err
	}
	if err := s.manager.Cancel(ctx, userID, sessionID); err != nil {
		s.logger.Error("cancel session failed", "session_id", sessionID, "error", err)
		return nil, toStatusError(err)
	}
	return &extractflowpb.CancelSessionResponse{}, nil
}

func (s *SessionService) DownloadBundle(ctx context.Context, req *extractflowpb.DownloadBundleRequest) (*extractflowpb.DownloadBundleResponse, error) {
	userID, err := parseUUID("user_id", req.GetUserId())
	if err != nil {
		return nil, err
	}
	sessionID, err := parseUUID("session_id", req.GetSessionId())
	if err != nil {
		return nil, err
	}
	data, err := s.manager.Download(ctx, userID, sessionID)
	if err != nil {
		s.logger.Error("bundle download failed", "session_id", sessionID, "error", err)
		return nil, toStatusError(err)
	}
	s.logger.Info("bundle downloaded", "session_id", sessionID, "bytes", len(data))
	return &extractflowpb.DownloadBundleResponse{Bundle: data}, nil
}

func toPBSession(s *entity.Session) *extractflowpb.Session {
	return &extractflowpb.Session{
		Id:             s.ID.String(),
		Status:         string(s.Status),
		TotalUnits:     int32(s.TotalUnits),
		CompletedUnits: int32(s.CompletedUnits),
		CreatedAt:      s.CreatedAt.Format(time.RFC3339Nano),
		ExpiresAt:      s.ExpiresAt.Format(time.RFC3339Nano),
	}
}

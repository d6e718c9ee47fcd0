package monitor

import (
	"context"
	"errors"
	"log/slog"

	"github.com/lumelab/focuswatch/internal/application"
	"github.com/lumelab/focuswatch/internal/domain/analysis"
	"github.com/lumelab/focuswatch/internal/domain/frame"
)

// fallback shown when an internal failure carries no usable text
const fallbackErrorMessage = "分析失败，请稍后再试"

// Service implements the frame-analysis use cases.
// Safe for concurrent use; calls are independent, never coordinated
// or deduplicated.
type Service struct {
	Classifier analysis.Classifier
	Sessions   *Tracker
	Clock      application.Clock
	Logger     *slog.Logger
}

func NewService(classifier analysis.Classifier, sessions *Tracker, clock application.Clock, logger *slog.Logger) *Service {
	return &Service{
		Classifier: classifier,
		Sessions:   sessions,
		Clock:      clock,
		Logger:     logger,
	}
}

// StartSession opens a new monitoring session.
func (s *Service) StartSession() analysis.SessionID {
	return s.Sessions.Start(s.Clock.Now())
}

// AnalyzeFrame classifies one frame within a session.
//
// ErrInvalidFrame and ErrSessionNotFound are returned to the caller;
// every other failure (credential, transport, empty response, parse)
// comes back as a normal ERROR-status result so the front end has a
// single rendering path for "the service could not answer".
func (s *Service) AnalyzeFrame(ctx context.Context, session analysis.SessionID, image string) (analysis.Result, error) {
	if !s.Sessions.Exists(session) {
		return analysis.Result{}, analysis.ErrSessionNotFound
	}

	payload, err := frame.Normalize(image)
	if err != nil {
		return analysis.Result{}, err
	}

	res, err := s.Classifier.Classify(ctx, payload)
	if err != nil {
		s.Logger.Warn("frame classification failed",
			"session", string(session),
			"err", err,
		)
		res = analysis.Result{
			Status:     analysis.StatusError,
			Message:    errorMessage(err),
			Confidence: 0,
		}
	}

	if _, err := s.Sessions.Record(session, s.Clock.Now(), res); err != nil {
		return analysis.Result{}, err
	}
	return res, nil
}

// Snapshots returns up to limit recent snapshots, newest first.
func (s *Service) Snapshots(session analysis.SessionID, limit int) ([]analysis.Snapshot, error) {
	return s.Sessions.Snapshots(session, limit)
}

// Summary returns the per-status counts for a session.
func (s *Service) Summary(session analysis.SessionID) (analysis.Summary, error) {
	return s.Sessions.Summary(session)
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, analysis.ErrCredentialMissing):
		return "AI 服务凭证未配置"
	case errors.Is(err, analysis.ErrEmptyResponse):
		return "AI 服务没有返回内容"
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackErrorMessage
}

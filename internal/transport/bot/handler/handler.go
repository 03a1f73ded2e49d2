package handler

import (
	"context"

	service "mpin_check/internal/domain/service/pin"
	"mpin_check/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type pinService interface {
	Check(ctx context.Context, in service.CheckInput) (service.CheckResult, error)
}

type Handler struct {
	svc pinService
}

func New(svc pinService) *Handler {
	return &Handler{
		svc: svc,
	}
}

package server

import (
	"context"
	"fmt"
	"net/http"

	service "mpin_check/internal/domain/service/pin"
	"mpin_check/pkg/httpx/reply"
	"mpin_check/pkg/httpx/req"
	"mpin_check/pkg/rest"
)

type pinService interface {
	Check(context.Context, service.CheckInput) (service.CheckResult, error)
	SelfTest(context.Context) service.SelfTestReport
}

type PinServer struct {
	pinService pinService
}

func NewPinServer(pinService pinService) PinServer {
	return PinServer{
		pinService: pinService,
	}
}

func (s PinServer) postV1PinCheck(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PinCheckRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.pinService.Check(ctx, newCheckInput(request))
	if err != nil {
		return fmt.Errorf("pinService.Check: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTPinVerdict(result))

	return nil
}

func (s PinServer) postV1PinSelfTest(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	report := s.pinService.SelfTest(ctx)

	reply.JSON(ctx, w, http.StatusOK, newRESTSelfTestReport(report))

	return nil
}

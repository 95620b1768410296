package http

import (
	"context"

	"github.com/aretw0/devsession/pkg/domain"
)

// Pinger is implemented by stores that can report their reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DevicesResponse is the body of GET /devices.
type DevicesResponse struct {
	Devices []domain.DeviceID `json:"devices"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

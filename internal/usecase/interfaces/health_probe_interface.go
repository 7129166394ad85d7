package interfaces

import "context"

//go:generate mockgen -source=health_probe_interface.go -destination=mocks/mock_health_probe_interface.go -package=mock_interfaces

type IHealthProbe interface {
	Ping(ctx context.Context) error
}

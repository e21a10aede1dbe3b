package compose

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// ContainerInspector is the narrow slice of the Docker Engine API needed to
// resolve the image digest backing a running container.
//
//go:generate go run github.com/matryer/moq@latest -pkg mocks -out mocks/inspector.go . ContainerInspector
type ContainerInspector interface {
	ContainerInspect(ctx context.Context, containerID string) (container.InspectResponse, error)
}

// NewEngineClient connects to the local Docker Engine API, honoring the
// standard DOCKER_HOST environment.
func NewEngineClient(ctx context.Context) (ContainerInspector, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	if _, err := cli.Ping(ctx); err != nil {
		return nil, fmt.Errorf("connect to docker engine: %w", err)
	}

	return cli, nil
}

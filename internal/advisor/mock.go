package advisor

import (
	"context"
	"fmt"
)

// MockClient is a deterministic, offline advisor for tests and local
// development.
type MockClient struct{}

func NewMock() *MockClient { return &MockClient{} }

func (m *MockClient) Suggest(_ context.Context, s Summary) (string, error) {
	if s.Status == "infeasible" {
		return fmt.Sprintf(
			"The target of %.1f ha exceeds fleet capacity. Consider adding tractors, extending the %.1f-hour day, or raising the maximum speed.",
			s.TargetHectares, s.WorkingHours,
		), nil
	}
	return fmt.Sprintf(
		"Run %s at %.1f km/h with %d tractors; expect about %.2f hours and %.0f L of fuel for %.1f ha.",
		s.OperationName, s.OptimalSpeedKmh, s.TractorCount, s.TimeRequiredHours, s.FuelRequired, s.TargetHectares,
	), nil
}

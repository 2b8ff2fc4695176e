package dishcovery

import clicksuc "github.com/thvnhtai/dishcovery/internal/usecase/clicks"

// ClickService records restaurant clicks for the recommendation engine,
// fire-and-forget. Intended usage is one Log per distinct detail open.
type ClickService struct {
	svc *clicksuc.Service
}

// Log sends a click event in the background and returns immediately. A call
// with an empty userID (guest) performs no network I/O. Failures are logged
// and never retried; this path cannot block or fail the triggering flow.
func (s *ClickService) Log(userID, restaurantID string) {
	s.svc.Log(userID, restaurantID)
}

// Flush blocks until in-flight click sends finish.
func (s *ClickService) Flush() {
	s.svc.Flush()
}

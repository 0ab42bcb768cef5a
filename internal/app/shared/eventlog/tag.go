// Package eventlog holds helpers shared by the usecases that persist domain
// event streams.
package eventlog

import "kappaverse/internal/domain/kappa"

// Tag stamps the owning player onto every event payload before persistence.
func Tag(events []kappa.DomainEvent, playerID string) {
	for i := range events {
		if events[i].Payload == nil {
			events[i].Payload = map[string]any{}
		}
		events[i].Payload["player_id"] = playerID
	}
}

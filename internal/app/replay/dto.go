package replay

import "kappaverse/internal/domain/kappa"

type Request struct {
	PlayerID     string
	Limit        int
	OccurredFrom int64
	OccurredTo   int64
}

type Response struct {
	Events []kappa.DomainEvent `json:"events"`
}

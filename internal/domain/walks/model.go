package walks

import "time"

const DefaultDescription = "unknown"

type Walk struct {
	ID          string
	Date        time.Time
	Description string
	UserID      string
	// AnimalID vacío = el animal fue dado de baja.
	AnimalID  string
	CreatedAt time.Time
}

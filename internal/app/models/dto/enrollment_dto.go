package dto

import (
	"github.com/acadio/backend/internal/app/models"
)

// SubscribeProgramResponse is returned when a program enrollment succeeds.
// The full program record rides along so the portal can render it directly.
type SubscribeProgramResponse struct {
	Message string         `json:"message"`
	Program models.Program `json:"program"`
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModuleCategory groups modules on the account-setup and admin screens.
type ModuleCategory string

const (
	CategoryHR            ModuleCategory = "RH"
	CategoryCommunication ModuleCategory = "Communication"
	CategoryManagement    ModuleCategory = "Gestion"
)

// Module is a persisted catalog entry. The name is the stable identifier used by
// grants and by the registry; the persisted row is the source of truth for pricing.
type Module struct {
	ModuleID    string          `json:"moduleID"`
	Name        string          `json:"name"`
	Category    ModuleCategory  `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

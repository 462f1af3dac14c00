package entity

import "time"

// ChangeType classifies a quantity transition in the audit trail.
type ChangeType string

const (
	// ChangePurchase marks a quantity increase.
	ChangePurchase ChangeType = "purchase"
	// ChangeSale marks a quantity decrease.
	ChangeSale ChangeType = "sale"
	// ChangeAdjustment is reserved for explicit corrections. The current
	// classification never produces it; it stays in the model so stored
	// documents using it remain readable.
	ChangeAdjustment ChangeType = "adjustment"
)

// SystemActor is recorded as ChangedBy when no acting user is known.
const SystemActor = "system"

// StockHistory is one append-only audit record describing a quantity
// transition on an inventory item. Entries are created exclusively by the
// audit worker and are never mutated or deleted.
type StockHistory struct {
	ID               string     `json:"id"`
	ItemID           string     `json:"itemId"` // Weak reference; the item may be deleted later.
	Type             ChangeType `json:"type"`
	PreviousQuantity int        `json:"previousQuantity"`
	NewQuantity      int        `json:"newQuantity"`
	ChangedBy        string     `json:"changedBy"`
	Timestamp        time.Time  `json:"timestamp"` // Server-assigned.
}

// ClassifyChange derives the change type from the sign of the quantity
// delta. Any non-increase is treated as a sale.
func ClassifyChange(previous, next int) ChangeType {
	if next > previous {
		return ChangePurchase
	}

	return ChangeSale
}

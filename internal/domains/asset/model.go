package asset

import (
	"strings"
	"time"
)

// Asset is a named balance scoped to a book. Balance is the signed amount in
// the smallest currency unit; the domain never does fractional arithmetic.
type Asset struct {
	ID      int64  `json:"id" db:"id"`
	BookID  int64  `json:"book_id" db:"book_id"`
	Name    string `json:"name" db:"name"` // 1-100 chars
	Balance int64  `json:"balance" db:"balance"`

	// OwnerMemberID attributes the asset to one member of the book for
	// display. Nil means unattributed.
	OwnerMemberID *int64 `json:"owner_member_id" db:"owner_member_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ApplyUpdate applies the partial-update fields. Name and balance are only
// written when provided (and the name non-blank); ownerMemberID is always
// overwritten, so passing nil clears the attribution.
func (a *Asset) ApplyUpdate(name *string, balance *int64, ownerMemberID *int64) {
	if name != nil && strings.TrimSpace(*name) != "" {
		a.Name = *name
	}
	if balance != nil {
		a.Balance = *balance
	}
	a.OwnerMemberID = ownerMemberID
}

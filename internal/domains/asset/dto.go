package asset

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAssetRequest - asset creation payload. Balance is a pointer so an
// explicit zero passes the required check.
type CreateAssetRequest struct {
	Name          string `json:"name" binding:"required"`
	Balance       *int64 `json:"balance" binding:"required"`
	OwnerMemberID *int64 `json:"owner_member_id"`
}

func (r CreateAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("asset name is required"),
			validation.Length(1, 100).Error("asset name must be 1-100 characters"),
		),
		validation.Field(&r.Balance,
			validation.NotNil.Error("balance is required"),
		),
	)
}

// UpdateAssetRequest - partial update. Name and balance keep their stored
// values when absent; owner_member_id is applied as sent, so omitting it
// clears the attribution.
type UpdateAssetRequest struct {
	Name          *string `json:"name"`
	Balance       *int64  `json:"balance"`
	OwnerMemberID *int64  `json:"owner_member_id"`
}

func (r UpdateAssetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Length(0, 100).Error("asset name must be at most 100 characters"),
			),
		),
	)
}

// AssetResponse - API representation of an asset. OwnerNickname is resolved
// from the member store when the asset is attributed.
type AssetResponse struct {
	ID            int64     `json:"id"`
	BookID        int64     `json:"book_id"`
	Name          string    `json:"name"`
	Balance       int64     `json:"balance"`
	OwnerMemberID *int64    `json:"owner_member_id"`
	OwnerNickname *string   `json:"owner_nickname,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (a *Asset) ToResponse() AssetResponse {
	return AssetResponse{
		ID:            a.ID,
		BookID:        a.BookID,
		Name:          a.Name,
		Balance:       a.Balance,
		OwnerMemberID: a.OwnerMemberID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// AssetSummaryResponse - balance total across a book's assets.
type AssetSummaryResponse struct {
	TotalBalance int64 `json:"total_balance"`
	AssetCount   int64 `json:"asset_count"`
}

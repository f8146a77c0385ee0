package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// StringList stores a JSON array of strings in a single column (product
// image references).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("model: cannot scan %T into StringList", src)
}

// snapshotVersion tags every audit payload so old rows stay decodable when
// the product schema evolves.
const snapshotVersion = 1

// ProductSnapshot is the audited view of a product record.
type ProductSnapshot struct {
	Code          string           `json:"code"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Category      string           `json:"category"`
	Condition     ProductCondition `json:"condition"`
	Status        ProductStatus    `json:"status"`
	PurchasePrice decimal.Decimal  `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Images        StringList       `json:"images"`
	SellerID      *string          `json:"seller_id,omitempty"`
	SourceID      *string          `json:"source_id,omitempty"`
}

// Snapshot is the old_value/new_value payload of a ProductLog entry.
// Exactly one of the payload fields is set, depending on the action:
// full product for created/updated, status for status_changed, transaction
// id for sold.
type Snapshot struct {
	Version       int              `json:"v"`
	Product       *ProductSnapshot `json:"product,omitempty"`
	Status        *ProductStatus   `json:"status,omitempty"`
	TransactionID *string          `json:"transaction_id,omitempty"`
}

func SnapshotOfProduct(p *Product) *Snapshot {
	return &Snapshot{
		Version: snapshotVersion,
		Product: &ProductSnapshot{
			Code:          p.Code,
			Name:          p.Name,
			Brand:         p.Brand,
			Category:      p.Category,
			Condition:     p.Condition,
			Status:        p.Status,
			PurchasePrice: p.PurchasePrice,
			SellingPrice:  p.SellingPrice,
			Description:   p.Description,
			Images:        p.Images,
			SellerID:      p.SellerID,
			SourceID:      p.SourceID,
		},
	}
}

func SnapshotOfStatus(s ProductStatus) *Snapshot {
	return &Snapshot{Version: snapshotVersion, Status: &s}
}

func SnapshotOfTransaction(id string) *Snapshot {
	return &Snapshot{Version: snapshotVersion, TransactionID: &id}
}

func (s *Snapshot) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *Snapshot) Scan(src any) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	}
	return fmt.Errorf("model: cannot scan %T into Snapshot", src)
}

package model

// Closed enumerations for every categorical field. Persisted as strings but
// typed so that status-transition logic is checked at compile time.

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleStaff }

type ProductCondition string

const (
	ConditionExcellent ProductCondition = "excellent"
	ConditionVeryGood  ProductCondition = "very_good"
	ConditionGood      ProductCondition = "good"
	ConditionFair      ProductCondition = "fair"
	ConditionPoor      ProductCondition = "poor"
)

type ProductStatus string

const (
	StatusAvailable       ProductStatus = "available"
	StatusSold            ProductStatus = "sold"
	StatusReserved        ProductStatus = "reserved"
	StatusDamaged         ProductStatus = "damaged"
	StatusUnderInspection ProductStatus = "under_inspection"
)

func (s ProductStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusSold, StatusReserved, StatusDamaged, StatusUnderInspection:
		return true
	}
	return false
}

type TransactionType string

const (
	TransactionPurchase TransactionType = "purchase"
	TransactionSale     TransactionType = "sale"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionCancelled TransactionStatus = "cancelled"
	TransactionRefunded  TransactionStatus = "refunded"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionCancelled, TransactionRefunded:
		return true
	}
	return false
}

type SourceType string

const (
	SourceConsigner     SourceType = "consigner"
	SourceEstateSale    SourceType = "estate_sale"
	SourceAuction       SourceType = "auction"
	SourcePrivateSeller SourceType = "private_seller"
	SourceWholesale     SourceType = "wholesale"
	SourceOther         SourceType = "other"
)

// Audit log actions. The column is free-form on the wire, but services only
// ever write these.
const (
	LogActionCreated       = "created"
	LogActionUpdated       = "updated"
	LogActionStatusChanged = "status_changed"
	LogActionSold          = "sold"
)

package models

// OrderStatus is the closed set of order lifecycle states. The backend
// assigns OrderNew at creation; every later change goes through the admin
// status update.
type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// Display emphasis values, matching the storefront badge variants.
const (
	EmphasisDefault     = "default"
	EmphasisSecondary   = "secondary"
	EmphasisOutline     = "outline"
	EmphasisDestructive = "destructive"
)

// StatusInfo is the canonical presentation of a status. The admin panel and
// the customer order lookup both render from this single table.
type StatusInfo struct {
	Label    string `json:"label"`
	Emphasis string `json:"emphasis"`
}

var statusTable = map[OrderStatus]StatusInfo{
	OrderNew:       {Label: "Новый", Emphasis: EmphasisDefault},
	OrderConfirmed: {Label: "Подтверждён", Emphasis: EmphasisSecondary},
	OrderPreparing: {Label: "Готовится", Emphasis: EmphasisOutline},
	OrderReady:     {Label: "Готов", Emphasis: EmphasisDefault},
	OrderDelivered: {Label: "Доставлен", Emphasis: EmphasisSecondary},
	OrderCancelled: {Label: "Отменён", Emphasis: EmphasisDestructive},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTable[s]
	return ok
}

// Terminal reports whether no further business action is expected after s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// DescribeStatus returns the label and emphasis for a status value. Unknown
// values are displayed as-is with the default emphasis, never rejected.
func DescribeStatus(status string) StatusInfo {
	if info, ok := statusTable[OrderStatus(status)]; ok {
		return info
	}
	return StatusInfo{Label: status, Emphasis: EmphasisDefault}
}

// AllStatuses lists the statuses in lifecycle order.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		OrderNew,
		OrderConfirmed,
		OrderPreparing,
		OrderReady,
		OrderDelivered,
		OrderCancelled,
	}
}

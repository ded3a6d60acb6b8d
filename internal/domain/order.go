package domain

// Order status values. Transitions are free-form: an order may move from any
// status to any other.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusInProgress = "in-progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Order is a package purchase request. Package name and price are snapshotted
// at order time so later package edits do not rewrite order history.
type Order struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	PackageID     string `json:"packageId"`
	PackageName   string `json:"packageName"`
	PackagePrice  string `json:"packagePrice"`
	Status        string `json:"status"`
	OrderDate     string `json:"orderDate"`
	Notes         string `json:"notes,omitempty"`
}

func (o Order) EntityID() string { return o.ID }

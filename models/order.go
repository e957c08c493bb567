package models

// OrderItem is one line of an order.
type OrderItem struct {
	Name     string   `bson:"name" json:"name"`
	Cost     string   `bson:"cost" json:"cost"`
	Date     string   `bson:"date,omitempty" json:"date,omitempty"`
	Duration int      `bson:"duration,omitempty" json:"duration,omitempty"`
	Menu     []string `bson:"menu,omitempty" json:"menu,omitempty"`
}

// Order is a submitted list of items owned by one user. Status starts as
// "Pending" and is a free-form string afterwards; there is no enforced
// transition graph.
type Order struct {
	User      string      `bson:"user" json:"user"`
	Items     []OrderItem `bson:"items" json:"items"`
	TotalCost string      `bson:"totalCost" json:"totalCost"`
	OrderTime string      `bson:"orderTime" json:"orderTime"`
	Status    string      `bson:"status" json:"status"`
}

// OrderUpdate carries a status change for an order.
type OrderUpdate struct {
	Status *string `json:"status"`
}

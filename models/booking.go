package models

// Booking is a single reservation owned by one user's record collection.
// Dates are kept as strings: "YYYY-MM-DD" for stay services and
// "YYYY-MM-DD HH" for hourly services.
type Booking struct {
	User          string   `bson:"user" json:"user"`
	Service       string   `bson:"service" json:"service"`
	Cost          string   `bson:"cost" json:"cost"`
	Date          string   `bson:"date" json:"date"`
	EndDate       string   `bson:"endDate,omitempty" json:"endDate,omitempty"`
	Duration      int      `bson:"duration" json:"duration"`
	PaymentTime   string   `bson:"paymentTime" json:"paymentTime"`
	IsConfirmed   bool     `bson:"isConfirmed" json:"isConfirmed"`
	IsPaid        bool     `bson:"isPaid" json:"isPaid"`
	GuestCount    int      `bson:"guestCount,omitempty" json:"guestCount,omitempty"`
	CheckInTime   string   `bson:"checkInTime,omitempty" json:"checkInTime,omitempty"`
	Comment       string   `bson:"comment,omitempty" json:"comment,omitempty"`
	BanquetExtras []string `bson:"banquetExtras,omitempty" json:"banquetExtras,omitempty"`
	KitchenMenu   []string `bson:"kitchenMenu,omitempty" json:"kitchenMenu,omitempty"`
}

// BookingInput is the request payload for creating a booking. Cost is
// optional; when empty it is derived from the service catalog.
type BookingInput struct {
	Service       string   `json:"service"`
	Cost          string   `json:"cost"`
	Date          string   `json:"date"`
	EndDate       string   `json:"endDate"`
	Duration      int      `json:"duration"`
	PaymentTime   string   `json:"paymentTime"`
	IsConfirmed   bool     `json:"isConfirmed"`
	GuestCount    int      `json:"guestCount"`
	CheckInTime   string   `json:"checkInTime"`
	Comment       string   `json:"comment"`
	BanquetExtras []string `json:"banquetExtras"`
	KitchenMenu   []string `json:"kitchenMenu"`
}

// BookingUpdate carries an admin edit. Nil fields keep the existing value.
type BookingUpdate struct {
	Service       *string   `json:"service"`
	Cost          *string   `json:"cost"`
	Date          *string   `json:"date"`
	EndDate       *string   `json:"endDate"`
	Duration      *int      `json:"duration"`
	PaymentTime   *string   `json:"paymentTime"`
	IsConfirmed   *bool     `json:"isConfirmed"`
	IsPaid        *bool     `json:"isPaid"`
	GuestCount    *int      `json:"guestCount"`
	CheckInTime   *string   `json:"checkInTime"`
	Comment       *string   `json:"comment"`
	BanquetExtras *[]string `json:"banquetExtras"`
	KitchenMenu   *[]string `json:"kitchenMenu"`
}

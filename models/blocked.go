package models

// BlockedSlot marks a service/date combination as unavailable. Date carries
// either a whole day ("2025-05-01") for stay services or an hour stamp
// ("2025-05-01 14:00") for hourly services. No duplicate (service, date)
// pair may exist.
type BlockedSlot struct {
	Service string `bson:"service" json:"service"`
	Date    string `bson:"date" json:"date"`
}

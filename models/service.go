package models

// LocalizedText holds a string in the two supported locales.
type LocalizedText struct {
	Ru string `bson:"ru" json:"ru"`
	En string `bson:"en" json:"en"`
}

// Service describes a bookable service from the catalog. The price is kept
// as the raw display string (e.g. "2000 ₽/ночь"); cost computation parses
// the leading amount out of it.
type Service struct {
	Price       string        `bson:"price" json:"price"`
	Name        LocalizedText `bson:"name" json:"name"`
	Description LocalizedText `bson:"description" json:"description"`
}

// Service identifiers.
const (
	ServiceStandardRoom = "StandardRoom"
	ServiceLuxRoom      = "LuxRoom"
	ServiceSauna        = "Sauna"
	ServiceBanya        = "Banya"
	ServiceKitchen      = "Kitchen"
	ServiceBanquet      = "Banquet"
)

// HourlyServices are blocked and billed at hour granularity. Rooms are
// blocked at day granularity across a date range instead.
var HourlyServices = map[string]bool{
	ServiceSauna:   true,
	ServiceBanya:   true,
	ServiceBanquet: true,
	ServiceKitchen: true,
}

// DefaultServices seeds the catalog on startup.
func DefaultServices() map[string]Service {
	return map[string]Service{
		ServiceStandardRoom: {
			Price:       "2000 ₽/ночь",
			Name:        LocalizedText{Ru: "Стандартная комната", En: "Standard Room"},
			Description: LocalizedText{Ru: "Уютная комната для отдыха", En: "Cozy room for a relaxing stay"},
		},
		ServiceLuxRoom: {
			Price:       "3500 ₽/ночь",
			Name:        LocalizedText{Ru: "Люкс", En: "Lux Room"},
			Description: LocalizedText{Ru: "Роскошная комната с премиум-удобствами", En: "Luxurious room with premium amenities"},
		},
		ServiceSauna: {
			Price:       "1500 ₽/час",
			Name:        LocalizedText{Ru: "Сауна", En: "Sauna"},
			Description: LocalizedText{Ru: "Теплая и расслабляющая сауна", En: "Warm and relaxing sauna experience"},
		},
		ServiceBanya: {
			Price:       "2000 ₽/час",
			Name:        LocalizedText{Ru: "Баня", En: "Banya"},
			Description: LocalizedText{Ru: "Традиционная русская баня с паром", En: "Traditional Russian banya with steam"},
		},
		ServiceKitchen: {
			Price:       "1000 ₽/час",
			Name:        LocalizedText{Ru: "Кухня", En: "Kitchen"},
			Description: LocalizedText{Ru: "Небольшая кухня для ваших кулинарных нужд", En: "Small kitchen for your culinary needs"},
		},
		ServiceBanquet: {
			Price:       "5000 ₽/час + 500 ₽/гость",
			Name:        LocalizedText{Ru: "Банкет", En: "Banquet"},
			Description: LocalizedText{Ru: "Идеально для свадеб и торжеств", En: "Perfect for weddings and celebrations"},
		},
	}
}

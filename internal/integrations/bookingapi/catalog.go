package bookingapi

import "github.com/everliz/VIP-BookingService/internal/domain"

// BuiltinTents встроенный каталог из шести шатров
// Используется, когда API не сконфигурирован или недоступен
var BuiltinTents = []domain.Tent{
	{
		ID:          "armbrustschutzenzelt",
		Name:        "Armbrustschützenzelt",
		Capacity:    5000,
		Image:       "tents/armbrustschutzenzelt.jpg",
		Description: "Traditional tent with crossbow shooting competition.",
	},
	{
		ID:          "augustiner",
		Name:        "Augustiner-Festhalle",
		Capacity:    6000,
		Image:       "tents/augustiner.jpg",
		Description: "Famous for its Augustiner beer served from wooden barrels.",
	},
	{
		ID:          "fischer-vroni",
		Name:        "Fischer-Vroni",
		Capacity:    3000,
		Image:       "tents/fischer-vroni.jpg",
		Description: "Known for its fish specialties including \"Steckerlfisch\".",
	},
	{
		ID:          "hacker-festzelt",
		Name:        "Hacker-Festzelt",
		Capacity:    7000,
		Image:       "tents/hacker-festzelt.jpg",
		Description: "Also known as \"Himmel der Bayern\" (Heaven of Bavarians).",
	},
	{
		ID:          "hofbrau",
		Name:        "Hofbräu-Festzelt",
		Capacity:    6000,
		Image:       "tents/hofbrau.jpg",
		Description: "Popular with international visitors and known for party atmosphere.",
	},
	{
		ID:          "kafer-wiesn-schanke",
		Name:        "Käfer Wiesn-Schänke",
		Capacity:    3000,
		Image:       "tents/kafer-wiesn-schanke.jpg",
		Description: "Upscale tent popular with celebrities and VIPs.",
	},
}

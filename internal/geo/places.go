package geo

import "strings"

// DefaultRegion is the location reported when nothing in a post names a place.
const DefaultRegion = "Kenya"

// DefaultCity anchors coordinates for locations missing from the table.
const DefaultCity = "Nairobi"

// Gazetteer lists the place names searched for in post text. Order matters:
// the first entry found wins, regardless of where it appears in the text.
var Gazetteer = []string{
	"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret", "Thika",
	"Malindi", "Kitale", "Garissa", "Kakamega", "Nyeri", "Machakos",
	"Meru", "Lamu", "Nanyuki", "Naivasha", "Kiambu", "Ruiru",
	"Kangundo", "Athi River", "Syokimau", "Juja", "Limuru", "Ngong",
	"Rongai", "Karen", "Lavington", "Westlands", "Kilimani", "Langata",
	"Embakasi", "Kasarani", "Roysambu", "South B", "South C",
	"Eastleigh", "Parklands", "Muthaiga", "Runda", "Gigiri",
	"Bamburi", "Nyali", "Diani", "Watamu", "Kilifi", "Voi",
	"Migori", "Homabay", "Bungoma", "Kericho", "Nandi", "Bomet",
	"Embu", "Isiolo", "Marsabit", "Mandera", "Wajir", "Samburu",
	"Trans Nzoia", "Uasin Gishu", "Kitui", "Makueni", "Tharaka",
	"Murang'a", "Kirinyaga", "Laikipia", "Kajiado", "Narok",
	"Baringo", "Turkana", "West Pokot", "Elgeyo Marakwet",
	"Thika Road", "Mombasa Road", "Ngong Road", "Waiyaki Way",
	"CBD", "Industrial Area", "Upper Hill", "Hurlingham",
	"Kileleshwa", "Riverside", "Spring Valley", "Loresho",
	"Mountain View", "Zimmerman", "Kahawa", "Utawala", "Donholm",
	"Buruburu", "Umoja", "Pipeline", "Fedha", "Tassia",
	"Ngoingwa", "Section 9", "Section 8", "Kenol", "Makongeni",
}

type place struct {
	name  string
	point Point
}

// places is ordered; partial matches resolve to the first hit.
var places = []place{
	{"Nairobi", Point{-1.2921, 36.8219}},
	{"Mombasa", Point{-4.0435, 39.6682}},
	{"Kisumu", Point{-0.1022, 34.7617}},
	{"Nakuru", Point{-0.3031, 36.0800}},
	{"Eldoret", Point{0.5143, 35.2698}},
	{"Thika", Point{-1.0396, 37.0900}},
	{"Malindi", Point{-3.2138, 40.1169}},
	{"Kitale", Point{1.0187, 35.0020}},
	{"Nyeri", Point{-0.4197, 36.9511}},
	{"Machakos", Point{-1.5177, 37.2634}},
	{"Meru", Point{0.0480, 37.6559}},
	{"Nanyuki", Point{0.0067, 37.0722}},
	{"Naivasha", Point{-0.7172, 36.4310}},
	{"Kiambu", Point{-1.1714, 36.8356}},
	{"Ruiru", Point{-1.1489, 36.9606}},
	{"Ngong", Point{-1.3607, 36.6583}},
	{"Rongai", Point{-1.3964, 36.7586}},
	{"Karen", Point{-1.3197, 36.7116}},
	{"Westlands", Point{-1.2636, 36.8036}},
	{"Kilimani", Point{-1.2903, 36.7847}},
	{"Langata", Point{-1.3557, 36.7462}},
	{"Thika Road", Point{-1.1900, 36.9200}},
	{"Mombasa Road", Point{-1.3400, 36.8700}},
	{"Juja", Point{-1.1004, 37.0131}},
	{"Diani", Point{-4.3164, 39.5764}},
	{"Kilifi", Point{-3.6305, 39.8499}},
	{"Ngoingwa", Point{-1.0396, 37.0900}},
	{"Section 9", Point{-1.0396, 37.0900}},
	{"Section 8", Point{-1.0396, 37.0900}},
	{"CBD", Point{-1.2864, 36.8172}},
}

var exactPlaces = func() map[string]Point {
	m := make(map[string]Point, len(places))
	for _, p := range places {
		m[p.name] = p.point
	}
	return m
}()

// CoordsFor resolves a free-text location to coordinates: exact table hit,
// then case-insensitive containment either way, then DefaultCity.
func CoordsFor(location string) Point {
	if location == "" {
		return exactPlaces[DefaultCity]
	}
	if p, ok := exactPlaces[location]; ok {
		return p
	}

	lower := strings.ToLower(location)
	for _, p := range places {
		key := strings.ToLower(p.name)
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return p.point
		}
	}

	return exactPlaces[DefaultCity]
}

// Lookup returns the table entry for name without any fallback.
func Lookup(name string) (Point, bool) {
	p, ok := exactPlaces[name]
	return p, ok
}

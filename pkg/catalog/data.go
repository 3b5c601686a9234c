package catalog

import "github.com/KrishangSharma/tvs-motors-sub000/pkg/models"

// Seed catalog. In production this would be fed from the CMS; the CMS
// integration is out of scope so the catalog ships as static data.
var vehicles = []Vehicle{
	{
		ID:       "jupiter",
		Name:     "TVS Jupiter",
		Category: "scooter",
		Variants: []models.Option{
			{ID: "jupiter-std", Label: "Jupiter Drum"},
			{ID: "jupiter-zx", Label: "Jupiter ZX"},
			{ID: "jupiter-zx-smart", Label: "Jupiter ZX SmartXonnect"},
			{ID: "jupiter-classic", Label: "Jupiter Classic"},
		},
	},
	{
		ID:       "ntorq",
		Name:     "TVS NTORQ 125",
		Category: "scooter",
		Variants: []models.Option{
			{ID: "ntorq-disc", Label: "NTORQ 125 Disc"},
			{ID: "ntorq-race", Label: "NTORQ 125 Race Edition"},
			{ID: "ntorq-xp", Label: "NTORQ 125 Race XP"},
		},
	},
	{
		ID:       "apache-rtr-160",
		Name:     "TVS Apache RTR 160",
		Category: "motorcycle",
		Variants: []models.Option{
			{ID: "rtr160-2v", Label: "Apache RTR 160 2V"},
			{ID: "rtr160-4v", Label: "Apache RTR 160 4V"},
		},
	},
	{
		ID:       "apache-rtr-200",
		Name:     "TVS Apache RTR 200 4V",
		Category: "motorcycle",
		Variants: []models.Option{
			{ID: "rtr200-single", Label: "Apache RTR 200 4V Single Channel ABS"},
			{ID: "rtr200-dual", Label: "Apache RTR 200 4V Dual Channel ABS"},
		},
	},
	{
		ID:       "raider",
		Name:     "TVS Raider 125",
		Category: "motorcycle",
		Variants: []models.Option{
			{ID: "raider-drum", Label: "Raider 125 Drum"},
			{ID: "raider-disc", Label: "Raider 125 Disc"},
			{ID: "raider-smart", Label: "Raider 125 SmartXonnect"},
		},
	},
	{
		ID:       "iqube",
		Name:     "TVS iQube",
		Category: "electric",
		Variants: []models.Option{
			{ID: "iqube-std", Label: "iQube"},
			{ID: "iqube-s", Label: "iQube S"},
			{ID: "iqube-st", Label: "iQube ST"},
		},
	},
}

var dealers = []Dealer{
	{ID: "d-mum-01", Name: "Sai Point TVS", City: "Mumbai", Pincode: "400001", Latitude: 18.9398, Longitude: 72.8354},
	{ID: "d-mum-02", Name: "Shree Balaji Motors", City: "Mumbai", Pincode: "400028", Latitude: 19.0176, Longitude: 72.8424},
	{ID: "d-mum-03", Name: "Fortpoint TVS", City: "Mumbai", Pincode: "400063", Latitude: 19.1663, Longitude: 72.8526},
	{ID: "d-del-01", Name: "Dhingra Motors", City: "New Delhi", Pincode: "110001", Latitude: 28.6329, Longitude: 77.2195},
	{ID: "d-del-02", Name: "Capital Autos TVS", City: "New Delhi", Pincode: "110017", Latitude: 28.5355, Longitude: 77.2210},
	{ID: "d-blr-01", Name: "Maruthi Motors TVS", City: "Bengaluru", Pincode: "560001", Latitude: 12.9789, Longitude: 77.5917},
	{ID: "d-blr-02", Name: "Jayanagar TVS", City: "Bengaluru", Pincode: "560041", Latitude: 12.9250, Longitude: 77.5938},
	{ID: "d-chn-01", Name: "Anna Nagar TVS", City: "Chennai", Pincode: "600040", Latitude: 13.0850, Longitude: 80.2101},
	{ID: "d-chn-02", Name: "Sundaram Motors", City: "Chennai", Pincode: "600001", Latitude: 13.0827, Longitude: 80.2778},
	{ID: "d-pun-01", Name: "Deccan TVS", City: "Pune", Pincode: "411004", Latitude: 18.5074, Longitude: 73.8077},
}

package domain

import "github.com/shopspring/decimal"

type Highlight struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Text     string `json:"text"`
}

type Venue struct {
	Name         string      `json:"name"`
	Tagline      string      `json:"tagline"`
	Description  string      `json:"description"`
	LogoURL      string      `json:"logo_url"`
	HeroVideoURL string      `json:"hero_video_url"`
	HeroPoster   string      `json:"hero_poster_url"`
	Highlights   []Highlight `json:"highlights"`
	PoweredBy    string      `json:"powered_by"`
	ContactEmail string      `json:"contact_email"`
}

func DefaultVenue() Venue {
	return Venue{
		Name:         "Tatini",
		Tagline:      "Poolside Bar and Kitchen",
		Description:  "A contemporary dining experience where ambience, flavours, and moments come together.",
		LogoURL:      "/tatini-logo.png",
		HeroVideoURL: "/tatini-hero.mp4",
		HeroPoster:   "/tatini-hero.jpeg",
		Highlights: []Highlight{
			{Title: "Cuisine", ImageURL: "/images/cuisine.jpeg", Text: "A thoughtfully curated menu celebrating authentic flavours."},
			{Title: "Ambience", ImageURL: "/images/ambience.jpeg", Text: "An elegant atmosphere designed for memorable evenings."},
			{Title: "Location", ImageURL: "/images/location.jpeg", Text: "Baner, Pune, a serene escape within the city."},
		},
		PoweredBy:    "Table OS",
		ContactEmail: "tableoswork@gmail.com",
	}
}

// DefaultCatalog is the menu served when no catalog database is configured.
func DefaultCatalog() []Category {
	return []Category{
		{
			ID:    "starters",
			Title: "Starters",
			Dishes: []Dish{
				{
					ID:          "cc",
					Name:        "Crispy Corn",
					Description: "Golden fried corn tossed with mild spices.",
					Price:       decimal.NewFromInt(280),
					ImageURL:    "/menu/crispy-corn.jpg",
					IsVeg:       true,
				},
				{
					ID:          "tc",
					Name:        "Tandoori Chicken",
					Description: "Juicy chicken marinated overnight and grilled in a tandoor.",
					Price:       decimal.NewFromInt(520),
					ImageURL:    "/menu/Tandoori-Chicken.jpg",
					Addons: []Addon{
						{ID: "mint", Name: "Mint Dip", Price: decimal.NewFromInt(30)},
						{ID: "spice", Name: "Extra Spice Rub", Price: decimal.NewFromInt(20)},
					},
				},
			},
		},
		{
			ID:    "main-course",
			Title: "Main Course",
			Dishes: []Dish{
				{
					ID:          "bpm",
					Name:        "Butter Paneer Masala",
					Description: "Creamy tomato gravy with butter and spices.",
					Price:       decimal.NewFromInt(420),
					ImageURL:    "/menu/butter-paneer.jpg",
					IsVeg:       true,
				},
			},
		},
		{
			ID:    "drinks",
			Title: "Drinks",
			Dishes: []Dish{
				{
					ID:          "vm",
					Name:        "Virgin Mojito",
					Description: "Refreshing mint and lime cooler.",
					Price:       decimal.NewFromInt(220),
					ImageURL:    "/menu/mojito.jpg",
					IsVeg:       true,
				},
			},
		},
	}
}

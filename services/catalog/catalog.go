// Package catalog is the static registry of bookable services, their
// options and nested packages. Prices are integer cents. The data is
// defined once at startup and read-only thereafter.
package catalog

import "wavecrest/models"

// prices are in USD cents
var servicesMap = map[string]models.Service{
	"pontoons": {
		ID:             "pontoons",
		Name:           "Pontoon Rentals",
		Nested:         true,
		SupportsAddOns: true,
		Options: []models.ServiceOption{
			{
				Name: "Silverwave Pontoon",
				Packages: []models.Package{
					{Name: "4 Hours", Price: 45000},
					{Name: "6 Hours", Price: 60000},
					{Name: "8 Hours", Price: 75000},
				},
			},
			{
				Name: "Blackhawk Pontoon",
				Packages: []models.Package{
					{Name: "4 Hours", Price: 50000},
					{Name: "6 Hours", Price: 67500},
					{Name: "8 Hours", Price: 85000},
				},
			},
		},
	},
	"transport": {
		ID:     "transport",
		Name:   "Luxury Transport",
		Nested: true,
		Options: []models.ServiceOption{
			{
				Name: "Executive Sprinter",
				Packages: []models.Package{
					{Name: "Point to Point", Price: 30000},
					{Name: "Hourly, 3 hr min", Price: 45000},
					{Name: "Airport Transfer", Price: 20000},
				},
			},
			{
				Name: "Stretch Limousine",
				Packages: []models.Package{
					{Name: "Point to Point", Price: 40000},
					{Name: "Hourly, 3 hr min", Price: 60000},
					{Name: "Airport Transfer", Price: 27500},
				},
			},
		},
	},
	"bounce": {
		ID:                    "bounce",
		Name:                  "Bounce Houses",
		SupportsCombinedOffer: true,
		ComplementID:          "foam",
		Options: []models.ServiceOption{
			{Name: "Ninja Bounce House, 8 hours", Price: 20000},
			{Name: "Castle Combo w/ Slide, 8 hours", Price: 25000},
			{Name: "Toddler Playland, 8 hours", Price: 17500},
		},
	},
	"foam": {
		ID:                    "foam",
		Name:                  "Foam Parties",
		SupportsCombinedOffer: true,
		ComplementID:          "bounce",
		Options: []models.ServiceOption{
			{Name: "Foam Party, 2 hours", Price: 20000},
			{Name: "Glow Foam Night, 2 hours", Price: 27500},
		},
	},
	"dj": {
		ID:          "dj",
		Name:        "DJ Services",
		ContactOnly: true,
	},
}

// listing order for clients
var serviceOrder = []string{"pontoons", "bounce", "foam", "transport", "dj"}

var previewImages = map[string]string{
	"Silverwave Pontoon":             "/assets/rentals/silverwave.jpg",
	"Blackhawk Pontoon":              "/assets/rentals/blackhawk.jpg",
	"Executive Sprinter":             "/assets/transport/sprinter.jpg",
	"Stretch Limousine":              "/assets/transport/limo.jpg",
	"Ninja Bounce House, 8 hours":    "/assets/bounce/ninja.jpg",
	"Castle Combo w/ Slide, 8 hours": "/assets/bounce/castle.jpg",
	"Toddler Playland, 8 hours":      "/assets/bounce/toddler.jpg",
	"Foam Party, 2 hours":            "/assets/foam/party.jpg",
	"Glow Foam Night, 2 hours":       "/assets/foam/glow.jpg",
}

// GetService returns the catalog entry for a service id.
func GetService(id string) (models.Service, bool) {
	svc, ok := servicesMap[id]
	return svc, ok
}

// ListServices returns all services in display order.
func ListServices() []models.Service {
	services := make([]models.Service, 0, len(serviceOrder))
	for _, id := range serviceOrder {
		services = append(services, servicesMap[id])
	}
	return services
}

// GetPackagesFor returns the packages nested under a service option.
// Flat services and unknown options yield an empty slice; that is the
// designed fallback, not an error.
func GetPackagesFor(serviceID, optionName string) []models.Package {
	svc, ok := servicesMap[serviceID]
	if !ok || !svc.Nested {
		return []models.Package{}
	}
	for _, opt := range svc.Options {
		if opt.Name == optionName {
			// Copy so callers cannot mutate the registry.
			pkgs := make([]models.Package, len(opt.Packages))
			copy(pkgs, opt.Packages)
			return pkgs
		}
	}
	return []models.Package{}
}

// GetOption returns the named option on a service.
func GetOption(serviceID, optionName string) (models.ServiceOption, bool) {
	svc, ok := servicesMap[serviceID]
	if !ok {
		return models.ServiceOption{}, false
	}
	for _, opt := range svc.Options {
		if opt.Name == optionName {
			return opt, true
		}
	}
	return models.ServiceOption{}, false
}

// PreviewImage returns the preview asset path for an option name, if any.
func PreviewImage(optionName string) (string, bool) {
	img, ok := previewImages[optionName]
	return img, ok
}

package response

import "quotation_service/internal/domain/entities"

// ServiceResponse is a service with its eligible add-ons populated.
type ServiceResponse struct {
	entities.Service
	Addons []entities.Addon `json:"addons"`
}

func FromServiceWithAddons(s entities.ServiceWithAddons) ServiceResponse {
	s.AddonIDs = nonNilIDs(s.AddonIDs)
	return ServiceResponse{Service: s.Service, Addons: nonNilSlice(s.Addons)}
}

func FromServicesWithAddons(list []entities.ServiceWithAddons) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromServiceWithAddons(s))
	}
	return out
}

// BundleResponse is a bundle with its services and add-ons populated.
type BundleResponse struct {
	entities.Bundle
	Services []entities.Service `json:"services"`
	Addons   []entities.Addon   `json:"addons"`
}

func FromBundleWithServices(b entities.BundleWithServices) BundleResponse {
	b.ServiceIDs = nonNilIDs(b.ServiceIDs)
	b.Bundle.AddonIDs = nonNilIDs(b.Bundle.AddonIDs)
	return BundleResponse{Bundle: b.Bundle, Services: nonNilSlice(b.Services), Addons: nonNilSlice(b.Addons)}
}

func FromBundlesWithServices(list []entities.BundleWithServices) []BundleResponse {
	out := make([]BundleResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBundleWithServices(b))
	}
	return out
}

func FromAddons(list []entities.Addon) []entities.Addon {
	return nonNilSlice(list)
}

package handler

import (
	"github.com/autoyard/inventory-system/internal/core/domain"
	"github.com/autoyard/inventory-system/internal/core/ports"
)

func toVehicleResponse(v *domain.Vehicle) vehicleResponse {
	return vehicleResponse{
		ID:        v.ID,
		Make:      v.Make,
		Model:     v.Model,
		Year:      v.Year,
		Color:     v.Color,
		Price:     v.Price,
		Available: v.Available,
	}
}

func toVehicleListResponse(vehicles []*domain.Vehicle) []vehicleResponse {
	out := make([]vehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, toVehicleResponse(v))
	}
	return out
}

func toCreateInput(req createVehicleRequest) ports.CreateVehicleInput {
	return ports.CreateVehicleInput{
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Color:     req.Color,
		Price:     req.Price,
		Available: req.Available,
	}
}

func toChanges(req updateVehicleRequest) domain.VehicleChanges {
	return domain.VehicleChanges{
		Make:      req.Make,
		Model:     req.Model,
		Year:      req.Year,
		Color:     req.Color,
		Price:     req.Price,
		Available: req.Available,
	}
}

package service

import (
	"context"

	"krishisanjivni-backend/internal/domain"
)

// WeatherSource is the slice of the OpenWeatherMap client the service uses.
type WeatherSource interface {
	ReportByCity(ctx context.Context, city string) (*domain.WeatherReport, error)
	ReportByCoords(ctx context.Context, lat, lon float64) (*domain.WeatherReport, error)
}

type weatherService struct {
	source WeatherSource
}

func NewWeatherService(source WeatherSource) WeatherService {
	return &weatherService{source: source}
}

func (s *weatherService) ByCity(ctx context.Context, city string) (*domain.WeatherReport, error) {
	return s.source.ReportByCity(ctx, city)
}

func (s *weatherService) ByCoords(ctx context.Context, lat, lon float64) (*domain.WeatherReport, error) {
	return s.source.ReportByCoords(ctx, lat, lon)
}

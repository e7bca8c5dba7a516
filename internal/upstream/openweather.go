package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/logger"
)

// WeatherClient wraps the OpenWeatherMap current-conditions and 5-day
// forecast endpoints. All requests use metric units and Indian city scoping.
type WeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewWeatherClient(apiKey, baseURL string) *WeatherClient {
	return &WeatherClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type owmCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type owmCurrentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []owmCondition `json:"weather"`
}

type owmForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			TempMin  float64 `json:"temp_min"`
			TempMax  float64 `json:"temp_max"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []owmCondition `json:"weather"`
	} `json:"list"`
}

// ReportByCity fetches current conditions and the forecast for an Indian city
// name and merges them into one report.
func (c *WeatherClient) ReportByCity(ctx context.Context, city string) (*domain.WeatherReport, error) {
	query := url.Values{}
	query.Set("q", city+",IN")
	return c.report(ctx, query)
}

// ReportByCoords is the geolocation variant of ReportByCity.
func (c *WeatherClient) ReportByCoords(ctx context.Context, lat, lon float64) (*domain.WeatherReport, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", lat))
	query.Set("lon", fmt.Sprintf("%f", lon))
	return c.report(ctx, query)
}

func (c *WeatherClient) report(ctx context.Context, query url.Values) (*domain.WeatherReport, error) {
	query.Set("units", "metric")
	query.Set("appid", c.apiKey)

	var current owmCurrentResponse
	if err := c.get(ctx, "/weather", query, &current); err != nil {
		return nil, err
	}
	var forecast owmForecastResponse
	if err := c.get(ctx, "/forecast", query, &forecast); err != nil {
		return nil, err
	}

	report := &domain.WeatherReport{
		City: current.Name,
		Current: domain.CurrentWeather{
			Temp:      current.Main.Temp,
			FeelsLike: current.Main.FeelsLike,
			Humidity:  current.Main.Humidity,
			WindSpeed: current.Wind.Speed,
		},
	}
	if len(current.Weather) > 0 {
		report.Current.Description = current.Weather[0].Description
		report.Current.Icon = current.Weather[0].Icon
	}

	report.Forecast = make([]domain.ForecastEntry, 0, len(forecast.List))
	for _, entry := range forecast.List {
		fe := domain.ForecastEntry{
			Timestamp: entry.Dt,
			Temp:      entry.Main.Temp,
			TempMin:   entry.Main.TempMin,
			TempMax:   entry.Main.TempMax,
			Humidity:  entry.Main.Humidity,
		}
		if len(entry.Weather) > 0 {
			fe.Description = entry.Weather[0].Description
			fe.Icon = entry.Weather[0].Icon
		}
		report.Forecast = append(report.Forecast, fe)
	}
	return report, nil
}

func (c *WeatherClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	logger.ExternalServiceCall("openweathermap", path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("openweathermap", path, err)
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err := fmt.Errorf("city not found")
		logger.ExternalServiceResult("openweathermap", path, err)
		return err
	}
	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("weather API returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("openweathermap", path, err)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode weather response: %w", err)
	}
	logger.ExternalServiceResult("openweathermap", path, nil)
	return nil
}

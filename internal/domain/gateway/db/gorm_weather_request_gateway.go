package db

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"go-weather/internal/domain/entity"
)

type GormWeatherRequestGateway struct {
	DB *gorm.DB
}

var _ WeatherRequestGateway = (*GormWeatherRequestGateway)(nil)

func NewGormWeatherRequestGateway(db *gorm.DB) *GormWeatherRequestGateway {
	return &GormWeatherRequestGateway{DB: db}
}

func (gateway *GormWeatherRequestGateway) Migrate() error {
	return gateway.DB.AutoMigrate(&entity.WeatherRequest{})
}

func (gateway *GormWeatherRequestGateway) FindAll() ([]entity.WeatherRequest, error) {
	requests := make([]entity.WeatherRequest, 0)
	err := gateway.DB.
		Order("created_at DESC").
		Order("id DESC").
		Find(&requests).Error
	return requests, err
}

func (gateway *GormWeatherRequestGateway) FindAllForExport() ([]entity.WeatherRequest, error) {
	requests := make([]entity.WeatherRequest, 0)
	err := gateway.DB.Order("id ASC").Find(&requests).Error
	return requests, err
}

func (gateway *GormWeatherRequestGateway) FindByID(id int64) (*entity.WeatherRequest, error) {
	var request entity.WeatherRequest
	err := gateway.DB.First(&request, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (gateway *GormWeatherRequestGateway) Create(request entity.WeatherRequest) (*entity.WeatherRequest, error) {
	request.ID = 0
	request.CreatedAt = nowUTC()

	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (gateway *GormWeatherRequestGateway) UpdateByID(id int64, updated entity.WeatherRequest) (*entity.WeatherRequest, error) {
	var stored entity.WeatherRequest

	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).First(&stored, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		stored.Location = updated.Location
		stored.StartDate = updated.StartDate
		stored.EndDate = updated.EndDate
		stored.WeatherInfo = updated.WeatherInfo

		return tx.Model(&stored).
			Select("location", "start_date", "end_date", "weather_info").
			Updates(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (gateway *GormWeatherRequestGateway) DeleteByID(id int64) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entity.WeatherRequest{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

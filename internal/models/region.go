package models

import "database/sql"

// Region is a sales territory such as "Japan" or "Europe".
type Region struct {
	ID   int64          `gorm:"column:id;primaryKey"`
	Name sql.NullString `gorm:"column:region_name"`
}

func (Region) TableName() string { return TableRegion }

// RegionSales is the sales fact: units sold, in millions, of one release in
// one region.
type RegionSales struct {
	ID             int64           `gorm:"column:id;primaryKey"`
	GamePlatformID int64           `gorm:"column:game_platform_id;index"`
	RegionID       int64           `gorm:"column:region_id;index"`
	NumSales       sql.NullFloat64 `gorm:"column:num_sales"`

	GamePlatform *GamePlatform `gorm:"foreignKey:GamePlatformID"`
	Region       *Region       `gorm:"foreignKey:RegionID"`
}

func (RegionSales) TableName() string { return TableRegionSales }

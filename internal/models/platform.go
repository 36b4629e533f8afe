package models

import "database/sql"

// Platform is a console or computer system such as "PS2".
type Platform struct {
	ID   int64          `gorm:"column:id;primaryKey"`
	Name sql.NullString `gorm:"column:platform_name"`
}

func (Platform) TableName() string { return TablePlatform }

// GamePlatform is one release of a game-publisher pairing on a platform.
type GamePlatform struct {
	ID              int64         `gorm:"column:id;primaryKey"`
	GamePublisherID int64         `gorm:"column:game_publisher_id;index"`
	PlatformID      int64         `gorm:"column:platform_id;index"`
	ReleaseYear     sql.NullInt64 `gorm:"column:release_year"`

	GamePublisher *GamePublisher `gorm:"foreignKey:GamePublisherID"`
	Platform      *Platform      `gorm:"foreignKey:PlatformID"`
}

func (GamePlatform) TableName() string { return TableGamePlatform }

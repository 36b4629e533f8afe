package models

import "database/sql"

// Genre is a game classification such as "Shooter" or "Role-Playing".
type Genre struct {
	ID   int64          `gorm:"column:id;primaryKey"`
	Name sql.NullString `gorm:"column:genre_name"`
}

func (Genre) TableName() string { return TableGenre }

// Game is a title, independent of who published it or where it shipped.
type Game struct {
	ID      int64          `gorm:"column:id;primaryKey"`
	GenreID int64          `gorm:"column:genre_id;index"`
	Name    sql.NullString `gorm:"column:game_name"`

	Genre *Genre `gorm:"foreignKey:GenreID"`
}

func (Game) TableName() string { return TableGame }

// Publisher publishes games.
type Publisher struct {
	ID   int64          `gorm:"column:id;primaryKey"`
	Name sql.NullString `gorm:"column:publisher_name"`
}

func (Publisher) TableName() string { return TablePublisher }

// GamePublisher associates a game with one of its publishers. A game may
// have several associations, for example per region or edition.
type GamePublisher struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	GameID      int64 `gorm:"column:game_id;index"`
	PublisherID int64 `gorm:"column:publisher_id;index"`

	Game      *Game      `gorm:"foreignKey:GameID"`
	Publisher *Publisher `gorm:"foreignKey:PublisherID"`
}

func (GamePublisher) TableName() string { return TableGamePublisher }

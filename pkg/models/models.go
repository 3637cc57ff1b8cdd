package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Default rendition for uploaded shorts (portrait 1080x1920).
const (
	DefaultVideoHeight = 1920
	DefaultVideoWidth  = 1080
	DefaultQuality     = 100
)

type User struct {
	ID        string    `gorm:"primary_key;size:36" json:"id"`
	Email     string    `gorm:"unique_index;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Videos    []Video   `gorm:"foreignkey:OwnerID" json:"videos"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(scope *gorm.Scope) error {
	return scope.SetColumn("ID", uuid.New().String())
}

// PlayerOptions is the embedded playback configuration of a video.
// Quality is a percentage, valid between 1 and 100.
type PlayerOptions struct {
	ShowControls bool `json:"showControls"`
	Height       int  `json:"height"`
	Width        int  `json:"width"`
	Quality      int  `json:"quality"`
}

func DefaultPlayerOptions() PlayerOptions {
	return PlayerOptions{
		ShowControls: true,
		Height:       DefaultVideoHeight,
		Width:        DefaultVideoWidth,
		Quality:      DefaultQuality,
	}
}

type Video struct {
	ID            string        `gorm:"primary_key;size:36" json:"id"`
	Title         string        `gorm:"not null" json:"title"`
	Description   string        `gorm:"not null" json:"description"`
	MediaURL      string        `gorm:"not null" json:"mediaUrl"`
	ThumbnailURL  string        `gorm:"not null" json:"thumbnailUrl"`
	OwnerID       string        `gorm:"size:36;index;not null" json:"ownerId"`
	PlayerOptions PlayerOptions `gorm:"embedded;embedded_prefix:player_" json:"playerOptions"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (v *Video) BeforeCreate(scope *gorm.Scope) error {
	if v.ID == "" {
		return scope.SetColumn("ID", uuid.New().String())
	}
	return nil
}

package domain

import (
	"context"
	"time"
)

// GlobalSettingID is the primary key of the one counter row the system owns.
// The row is seeded at migration time; a missing row is a deployment fault.
const GlobalSettingID = 1

// GlobalSetting holds the last issued token number and the day it was issued
// for. The sequence restarts at 1 on the first registration of each day.
type GlobalSetting struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	LastToken     int       `gorm:"not null" json:"last_token"`
	LastTokenDate time.Time `gorm:"not null" json:"last_token_date"`
}

func (GlobalSetting) TableName() string {
	return "global_settings"
}

type CounterRepo interface {
	NextToken(ctx context.Context) (int, error)
}

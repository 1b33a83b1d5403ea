package repository

import (
	"context"
	"errors"
	"fmt"
	"hospital/domain"
	"time"

	"gorm.io/gorm"
)

type counterRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCounterRepository(database *gorm.DB) domain.CounterRepo {
	return &counterRepository{
		db:  database,
		now: time.Now,
	}
}

// NextToken issues the next daily token. The read-compare-write is guarded by
// a conditional update on the previously read (last_token, last_token_date)
// pair: if another registration got in between, the update matches no row and
// the whole sequence is retried. Concurrent callers therefore always receive
// distinct, gapless tokens.
func (cr *counterRepository) NextToken(ctx context.Context) (int, error) {
	for {
		var setting domain.GlobalSetting
		err := cr.db.WithContext(ctx).First(&setting, "id = ?", domain.GlobalSettingID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domain.ErrCounterNotSeeded
		}
		if err != nil {
			return 0, fmt.Errorf("could not read token counter: %v", err)
		}

		now := cr.now()
		next := setting.LastToken + 1
		if startOfDay(setting.LastTokenDate).Before(startOfDay(now)) {
			next = 1
		}

		res := cr.db.WithContext(ctx).Model(&domain.GlobalSetting{}).
			Where("id = ? AND last_token = ? AND last_token_date = ?",
				domain.GlobalSettingID, setting.LastToken, setting.LastTokenDate).
			Updates(map[string]interface{}{
				"last_token":      next,
				"last_token_date": now,
			})
		if res.Error != nil {
			return 0, fmt.Errorf("could not update token counter: %v", res.Error)
		}
		if res.RowsAffected == 1 {
			return next, nil
		}

		// Lost the race, reread and try again.
		if err := ctx.Err(); err != nil {
			return 0, err
		}
	}
}

func startOfDay(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

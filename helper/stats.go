package helper

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"essence_store/database"
	"essence_store/model"
)

const statsCacheKey = "admin:stats"
const statsCacheTTL = 60 * time.Second

type DashboardStats struct {
	TotalProducts  int64         `json:"totalProducts"`
	TotalOrders    int64         `json:"totalOrders"`
	PendingOrders  int64         `json:"pendingOrders"`
	UnreadMessages int64         `json:"unreadMessages"`
	TotalRevenue   float64       `json:"totalRevenue"`
	RecentOrders   []model.Order `json:"recentOrders"`
}

// ComputeStats aggregates the dashboard numbers straight from the database.
// Revenue only counts delivered orders.
func ComputeStats() (DashboardStats, error) {
	db := database.DB
	var stats DashboardStats

	db.Model(&model.Product{}).Where("is_active = ?", true).Count(&stats.TotalProducts)
	db.Model(&model.Order{}).Count(&stats.TotalOrders)
	db.Model(&model.Order{}).Where("status = ?", "pending").Count(&stats.PendingOrders)
	db.Model(&model.Contact{}).Where("is_read = ?", false).Count(&stats.UnreadMessages)

	if err := db.Model(&model.Order{}).
		Where("status = ?", "delivered").
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return stats, err
	}

	if err := db.Order("created_at desc").Limit(5).Find(&stats.RecentOrders).Error; err != nil {
		return stats, err
	}
	return stats, nil
}

// CachedStats serves the dashboard from redis when fresh, recomputing and
// re-caching on a miss. A dead redis degrades to direct computation.
func CachedStats(ctx context.Context) (DashboardStats, error) {
	if database.Redis != nil {
		if raw, err := database.Redis.Get(ctx, statsCacheKey).Result(); err == nil {
			var cached DashboardStats
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	stats, err := ComputeStats()
	if err != nil {
		return stats, err
	}
	cacheStats(ctx, stats)
	return stats, nil
}

func cacheStats(ctx context.Context, stats DashboardStats) {
	if database.Redis == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := database.Redis.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
		log.Printf("stats cache write failed: %v", err)
	}
}

// WarmStatsCache is run by the scheduler so the first dashboard hit after a
// quiet period does not pay the aggregation cost.
func WarmStatsCache() {
	stats, err := ComputeStats()
	if err != nil {
		log.Printf("stats warm failed: %v", err)
		return
	}
	cacheStats(context.Background(), stats)
}

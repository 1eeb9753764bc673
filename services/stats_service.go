// file: services/stats_service.go
package services

import (
	"github.com/Julius10-hub/UEB/models"
	"gorm.io/gorm"
)

// PlatformStats 是仪表盘统计的固定结构，各计数口径与对应列表接口一致
type PlatformStats struct {
	Users           int64 `json:"users"`
	Schools         int64 `json:"schools"`
	Events          int64 `json:"events"`
	Jobs            int64 `json:"jobs"`
	Bursaries       int64 `json:"bursaries"`
	Agents          int64 `json:"agents"`
	PastPapers      int64 `json:"past_papers"`
	Suggestions     int64 `json:"suggestions"`
	TotalStudents   int64 `json:"total_students"`
	VerifiedSchools int64 `json:"verified_schools"`
}

type CategoryStat struct {
	Category      string `json:"category"`
	Count         int64  `json:"count"`
	TotalStudents int64  `json:"total_students"`
}

// ComputePlatformStats 每次请求重新统计，读量低，不做缓存
func ComputePlatformStats(db *gorm.DB) (*PlatformStats, error) {
	stats := &PlatformStats{}

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.Users, db.Model(&models.User{})},
		{&stats.Schools, db.Model(&models.School{}).Where("is_active = ?", true)},
		{&stats.Events, db.Model(&models.Event{}).Where("is_active = ?", true)},
		{&stats.Jobs, db.Model(&models.Job{}).Where("is_active = ? AND status = ?", true, models.JobActive)},
		{&stats.Bursaries, db.Model(&models.Bursary{}).Where("is_active = ? AND status = ?", true, models.BursaryActive)},
		{&stats.Agents, db.Model(&models.Agent{}).Where("is_active = ? AND verification_status = ?", true, models.VerificationVerified)},
		{&stats.PastPapers, db.Model(&models.PastPaper{}).Where("is_active = ?", true)},
		{&stats.Suggestions, db.Model(&models.Suggestion{})},
		{&stats.VerifiedSchools, db.Model(&models.School{}).Where("is_verified = ?", true)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	err := db.Model(&models.School{}).
		Where("is_active = ?", true).
		Select("COALESCE(SUM(students), 0)").
		Scan(&stats.TotalStudents).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// ComputeCategoryStats 按学校分类聚合在校生规模
func ComputeCategoryStats(db *gorm.DB) ([]CategoryStat, error) {
	var rows []CategoryStat
	err := db.Model(&models.School{}).
		Where("is_active = ?", true).
		Select("category, COUNT(id) AS count, COALESCE(SUM(students), 0) AS total_students").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []CategoryStat{}
	}
	return rows, nil
}

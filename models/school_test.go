// file: models/school_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchoolUpdateRatingRunningAverage(t *testing.T) {
	db := newTestDB(t)

	school := School{
		Name:         "Unity College",
		Location:     "Buea",
		Category:     "Secondary",
		Rating:       4.0,
		TotalReviews: 1,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&school).Error)

	require.NoError(t, school.UpdateRating(db, 5))

	var reread School
	require.NoError(t, db.First(&reread, school.ID).Error)
	assert.InDelta(t, 4.5, reread.Rating, 1e-9)
	assert.Equal(t, 2, reread.TotalReviews)
}

func TestSchoolUpdateRatingFirstReview(t *testing.T) {
	db := newTestDB(t)

	school := School{Name: "Fresh Academy", Location: "Douala", Category: "Primary", IsActive: true}
	require.NoError(t, db.Create(&school).Error)

	require.NoError(t, school.UpdateRating(db, 3))

	var reread School
	require.NoError(t, db.First(&reread, school.ID).Error)
	assert.InDelta(t, 3.0, reread.Rating, 1e-9)
	assert.Equal(t, 1, reread.TotalReviews)
}

func TestSchoolSummaryProgramsNeverNil(t *testing.T) {
	s := School{Name: "X", Location: "Y", Category: "Primary"}
	assert.NotNil(t, s.Summary().Programs)
	assert.Empty(t, s.Summary().Programs)
}

func TestValidCategory(t *testing.T) {
	assert.NoError(t, ValidCategory("University"))
	assert.Error(t, ValidCategory("Bootcamp"))
}

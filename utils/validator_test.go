package utils

import (
	"testing"

	"DocTrackerGo/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayTypeValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type body struct {
		DayType models.DayType `binding:"required,daytype"`
	}
	for _, d := range models.DayTypes {
		assert.NoError(t, binding.Validator.ValidateStruct(body{DayType: d}), d)
	}
	assert.Error(t, binding.Validator.ValidateStruct(body{DayType: "Weekend"}))
	assert.Error(t, binding.Validator.ValidateStruct(body{}))
}

func TestRevokedKey(t *testing.T) {
	assert.Equal(t, "revoked_token:abc", revokedKey("abc"))
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

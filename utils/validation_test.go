package utils_test

import (
	"testing"

	"ledgerbook-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	assert.True(t, utils.ValidatePhone("+20 100 000 0001"))
	assert.True(t, utils.ValidatePhone("201000000001"))
	assert.False(t, utils.ValidatePhone("abc"))
	assert.False(t, utils.ValidatePhone("0"))
}

func TestValidateHexColor(t *testing.T) {
	assert.True(t, utils.ValidateHexColor("#3b82f6"))
	assert.False(t, utils.ValidateHexColor("3b82f6"))
	assert.False(t, utils.ValidateHexColor("#3b82f"))
	assert.False(t, utils.ValidateHexColor("#3b82fg"))
}

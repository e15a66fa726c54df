package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harshthakur02/freelancehub/internal/utils"
)

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"go", "sql"}, utils.ParseSkills("go, sql"))
	assert.Equal(t, []string{"go"}, utils.ParseSkills(" go ,, "))
	assert.Empty(t, utils.ParseSkills(""))
	assert.Empty(t, utils.ParseSkills(" , , "))
}

func TestParseRate(t *testing.T) {
	assert.Equal(t, 42.5, utils.ParseRate("42.5"))
	assert.Equal(t, 10.0, utils.ParseRate(" 10 "))
	assert.Zero(t, utils.ParseRate("abc"))
	assert.Zero(t, utils.ParseRate(""))
	assert.Zero(t, utils.ParseRate("-3"))
}

func TestFieldErrors(t *testing.T) {
	errs := utils.FieldErrors{}
	assert.NoError(t, errs.Err())

	errs.Add("email", "email is required")
	errs.Add("email", "invalid email format")
	errs.Add("title", "title is required")

	err := errs.Err()
	var vErr *utils.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields["email"], 2)
	assert.Equal(t, "validation failed; email: email is required, invalid email format; title: title is required", err.Error())
}

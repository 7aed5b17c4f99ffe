package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndCheckPassword(t *testing.T) {
	user := User{}
	require.NoError(t, user.SetPassword("correct horse battery"))
	assert.NotEqual(t, "correct horse battery", user.Password)
	assert.True(t, user.CheckPassword("correct horse battery"))
	assert.False(t, user.CheckPassword("wrong password"))
}

func TestAge(t *testing.T) {
	user := User{}
	assert.Nil(t, user.Age())

	dob := time.Now().AddDate(-30, 0, -1)
	user.DateOfBirth = &dob
	age := user.Age()
	require.NotNil(t, age)
	assert.Equal(t, 30, *age)
}

func TestFullName(t *testing.T) {
	user := User{FirstName: "Maria", LastName: "Silva"}
	assert.Equal(t, "Maria Silva", user.FullName())

	assert.Equal(t, "Maria", (&User{FirstName: "Maria"}).FullName())
	assert.Equal(t, "Silva", (&User{LastName: "Silva"}).FullName())
}

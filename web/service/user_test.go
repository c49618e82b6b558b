package service

import (
	"os"
	"testing"

	"gotodo/database"
	"gotodo/database/model"
	"gotodo/logger"
	"gotodo/util/crypto"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup() {
	logger.InitLogger(logging.DEBUG)
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestUserService(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	// Test CreateUser
	user, err := service.CreateUser("alice", "pw1")
	assert.NoError(t, err)
	assert.Greater(t, user.Id, 0)
	assert.NotEqual(t, "pw1", user.Password)
	assert.True(t, crypto.CheckPasswordHash(user.Password, "pw1"))

	// Test CheckUser
	checked := service.CheckUser("alice", "pw1")
	assert.NotNil(t, checked)
	assert.Equal(t, user.Id, checked.Id)

	assert.Nil(t, service.CheckUser("alice", "wrong"))
	assert.Nil(t, service.CheckUser("nobody", "pw1"))

	// Test GetUserById
	byId, err := service.GetUserById(user.Id)
	assert.NoError(t, err)
	assert.Equal(t, "alice", byId.Username)

	missing, err := service.GetUserById(9999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.CreateUser("alice", "pw1")
	assert.NoError(t, err)

	_, err = service.CreateUser("alice", "other")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// no second row was created
	var count int64
	database.GetDB().Model(model.User{}).Where("username = ?", "alice").Count(&count)
	assert.EqualValues(t, 1, count)

	// the original credentials still work
	assert.NotNil(t, service.CheckUser("alice", "pw1"))
	assert.Nil(t, service.CheckUser("alice", "other"))
}

func TestCreateUserEmptyFields(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	_, err := service.CreateUser("", "pw1")
	assert.Error(t, err)

	_, err = service.CreateUser("alice", "")
	assert.Error(t, err)

	var count int64
	database.GetDB().Model(model.User{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

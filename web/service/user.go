package service

import (
	"errors"

	"gotodo/database"
	"gotodo/database/model"
	"gotodo/logger"
	"gotodo/util/crypto"
)

// ErrUsernameTaken is returned when registration hits the unique index on
// the username column.
var ErrUsernameTaken = errors.New("username is already taken")

type UserService struct{}

// CreateUser registers a new account. The password is stored as a bcrypt
// hash. Uniqueness is enforced by the storage layer, not a pre-check, so
// concurrent registrations of the same username cannot both succeed.
func (s *UserService) CreateUser(username string, password string) (*model.User, error) {
	if username == "" {
		return nil, errors.New("username can not be empty")
	} else if password == "" {
		return nil, errors.New("password can not be empty")
	}

	hashedPassword, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: username,
		Password: hashedPassword,
	}
	err = database.GetDB().Create(user).Error
	if database.IsDuplicate(err) {
		return nil, ErrUsernameTaken
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies credentials and returns the matching user, or nil on
// unknown username or wrong password. Which of the two failed is not
// surfaced.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// GetUserById resurrects the session identity. Returns nil without error
// when no such user exists.
func (s *UserService) GetUserById(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

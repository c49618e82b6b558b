// Package service implements the application services over the database
// layer: account management and owner-scoped todo CRUD.
package service

import (
	"time"

	"gotodo/database"
	"gotodo/database/model"
	"gotodo/util/common"
)

var (
	ErrTitleRequired = common.NewErrorf("title can not be empty")
	ErrDescRequired  = common.NewErrorf("description can not be empty")
	ErrTitleTooLong  = common.NewErrorf("title can not exceed %d characters", model.MaxTitleLen)
	ErrDescTooLong   = common.NewErrorf("description can not exceed %d characters", model.MaxDescLen)
)

type TodoService struct{}

func validateTodo(title string, desc string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if desc == "" {
		return ErrDescRequired
	}
	if len(title) > model.MaxTitleLen {
		return ErrTitleTooLong
	}
	if len(desc) > model.MaxDescLen {
		return ErrDescTooLong
	}
	return nil
}

// CreateTodo validates the fields before anything is persisted and inserts
// a todo owned by userId.
func (s *TodoService) CreateTodo(title string, desc string, userId int) (*model.Todo, error) {
	if err := validateTodo(title, desc); err != nil {
		return nil, err
	}

	todo := &model.Todo{
		Title:       title,
		Desc:        desc,
		DateCreated: time.Now(),
		UserId:      userId,
	}
	if err := database.GetDB().Create(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

// GetTodos lists the todos owned by userId, oldest first.
func (s *TodoService) GetTodos(userId int) ([]*model.Todo, error) {
	db := database.GetDB()

	var todos []*model.Todo
	err := db.Model(model.Todo{}).
		Where("user_id = ?", userId).
		Order("sno").
		Find(&todos).
		Error
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// GetTodo is the owner-scoped lookup and the sole authorization mechanism:
// a todo that does not exist and a todo owned by someone else both come
// back as nil.
func (s *TodoService) GetTodo(sno int, userId int) (*model.Todo, error) {
	db := database.GetDB()

	todo := &model.Todo{}
	err := db.Model(model.Todo{}).
		Where("sno = ? and user_id = ?", sno, userId).
		First(todo).
		Error
	if database.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return todo, nil
}

// UpdateTodo mutates title and desc only, with the same validation as
// create.
func (s *TodoService) UpdateTodo(todo *model.Todo, title string, desc string) error {
	if err := validateTodo(title, desc); err != nil {
		return err
	}

	todo.Title = title
	todo.Desc = desc
	return database.GetDB().Save(todo).Error
}

func (s *TodoService) DeleteTodo(todo *model.Todo) error {
	return database.GetDB().Delete(todo).Error
}

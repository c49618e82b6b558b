// Package controller provides the HTTP request handlers: registration,
// login/logout and the owner-scoped todo CRUD pages.
package controller

import (
	"fmt"
	"strconv"

	"gotodo/database/model"
	"gotodo/logger"
	"gotodo/web/service"
	"gotodo/web/session"

	"github.com/gin-gonic/gin"
)

// TodoForm represents the todo create/update form fields.
type TodoForm struct {
	Title string `form:"title"`
	Desc  string `form:"desc"`
}

// TodoController handles the todo pages. All of its routes require a
// logged-in user; the group it registers on carries the auth guard.
type TodoController struct {
	todoService service.TodoService
}

func NewTodoController(g *gin.RouterGroup) *TodoController {
	a := &TodoController{}
	a.initRouter(g)
	return a
}

func (a *TodoController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.home)
	g.POST("/", a.create)
	g.GET("/view", a.view)
	g.GET("/update/:sno", a.updateForm)
	g.POST("/update/:sno", a.update)
	g.GET("/delete/:sno", a.delete)
}

func (a *TodoController) home(c *gin.Context) {
	user := session.LoginUser(c)
	todos, err := a.todoService.GetTodos(user.Id)
	if err != nil {
		logger.Warning("list todos err:", err)
	}
	html(c, "index.html", "Home", gin.H{"todos": todos})
}

func (a *TodoController) create(c *gin.Context) {
	user := session.LoginUser(c)

	var form TodoForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/", session.Flash{Category: session.FlashWarning, Message: "Invalid form data"})
		return
	}

	if _, err := a.todoService.CreateTodo(form.Title, form.Desc, user.Id); err != nil {
		redirectWithFlash(c, "/", session.Flash{Category: session.FlashWarning, Message: err.Error()})
		return
	}
	redirectWithFlash(c, "/", session.Flash{Category: session.FlashSuccess, Message: "Todo added"})
}

func (a *TodoController) view(c *gin.Context) {
	user := session.LoginUser(c)
	todos, err := a.todoService.GetTodos(user.Id)
	if err != nil {
		logger.Warning("list todos err:", err)
	}
	html(c, "view.html", "Your Todos", gin.H{"todos": todos})
}

// fetchTodo runs the owner-scoped lookup for the :sno param. A missing
// todo and a todo owned by someone else produce the same answer.
func (a *TodoController) fetchTodo(c *gin.Context) *model.Todo {
	user := session.LoginUser(c)

	sno, err := strconv.Atoi(c.Param("sno"))
	if err != nil {
		return nil
	}

	todo, err := a.todoService.GetTodo(sno, user.Id)
	if err != nil {
		logger.Warning("fetch todo err:", err)
		return nil
	}
	return todo
}

func (a *TodoController) updateForm(c *gin.Context) {
	todo := a.fetchTodo(c)
	if todo == nil {
		redirectWithFlash(c, "/", session.Flash{Category: session.FlashWarning, Message: "Todo not found"})
		return
	}
	html(c, "update.html", "Update Todo", gin.H{"todo": todo})
}

func (a *TodoController) update(c *gin.Context) {
	todo := a.fetchTodo(c)
	if todo == nil {
		redirectWithFlash(c, "/", session.Flash{Category: session.FlashWarning, Message: "Todo not found"})
		return
	}

	var form TodoForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithFlash(c, "/", session.Flash{Category: session.FlashWarning, Message: "Invalid form data"})
		return
	}

	if err := a.todoService.UpdateTodo(todo, form.Title, form.Desc); err != nil {
		redirectWithFlash(c, fmt.Sprintf("/update/%d", todo.Sno), session.Flash{Category: session.FlashWarning, Message: err.Error()})
		return
	}
	redirectWithFlash(c, "/", session.Flash{Category: session.FlashSuccess, Message: "Todo updated"})
}

func (a *TodoController) delete(c *gin.Context) {
	todo := a.fetchTodo(c)
	if todo == nil {
		redirectWithFlash(c, "/", session.Flash{Category: session.FlashWarning, Message: "Todo not found"})
		return
	}

	if err := a.todoService.DeleteTodo(todo); err != nil {
		logger.Warning("delete todo err:", err)
		redirectWithFlash(c, "/view", session.Flash{Category: session.FlashWarning, Message: "Unable to delete todo"})
		return
	}
	redirectWithFlash(c, "/view", session.Flash{Category: session.FlashSuccess, Message: "Todo deleted"})
}

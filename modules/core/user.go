package core

import (
	"github.com/RobinJosephDev/AdminUILinux/pkg/crud"
	"github.com/RobinJosephDev/AdminUILinux/pkg/httpapi"
)

type User struct {
	ID                   int    `json:"id" crud:"key"`
	Name                 string `json:"name" validate:"required,max=200,letters_punct"`
	Username             string `json:"username" validate:"required,min=3,max=50"`
	Email                string `json:"email" validate:"required,max=255,email"`
	Password             string `json:"password" crud:"hidden" validate:"omitempty,min=8"`
	PasswordConfirmation string `json:"password_confirmation" crud:"hidden" validate:"omitempty,eqfield=Password"`
	EmpCode              string `json:"emp_code" validate:"omitempty,max=30"`
	Role                 string `json:"role" validate:"required,oneof=admin employee carrier customer vendor"`

	CreatedAt string `json:"created_at" crud:"readonly"`
	UpdatedAt string `json:"updated_at" crud:"readonly"`
}

var UserSchema = crud.MustSchema[User]("user",
	crud.WithLabel[User](func(u User) string { return u.Username }),
	crud.WithRefinement[User](func(u *User, errs crud.ErrorMap) {
		if u.Password != "" && u.PasswordConfirmation == "" {
			errs["password_confirmation"] = "Password confirmation is required when setting a password"
		}
	}),
)

func NewUserController(client *httpapi.Client, opts ...crud.ListOption[User]) *crud.ListController[User] {
	return crud.NewListController(UserSchema, httpapi.NewResource[User](client, "user"), opts...)
}

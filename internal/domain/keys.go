package domain

type CtxKey string

const (
	KeyPersonID CtxKey = "PersonID"
	KeyUsername CtxKey = "Username"
	KeyUserRole CtxKey = "Role"
)

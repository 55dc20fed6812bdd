package domain

type CtxKey string

const (
	KeyUserID      CtxKey = "UserID"
	KeyUserEmail   CtxKey = "Email"
	KeyUserRole    CtxKey = "Role"
	KeyAuthContext CtxKey = "AuthContext"
	KeyRequestID   CtxKey = "RequestID"
)

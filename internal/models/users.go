package models

// UserRequest - модель для регистрации и аутентификации пользователя, приходит извне
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// GroupData - именованная роль с набором выданных ей разрешений
type GroupData struct {
	Name         string
	Capabilities []string
}

// UserData - модель пользователя из хранилища (снимок вместе с группами)
type UserData struct {
	UserUUID     string
	Login        string
	PasswordHash string
	Phone        string
	IsSuperuser  bool
	Groups       []GroupData
}

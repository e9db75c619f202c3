package responses

type Register struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

type Login struct {
	Token string `json:"token"`
}

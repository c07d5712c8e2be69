package models

type LoginRequest struct {
	Password string `json:"password" validate:"required,max=128"`
}

type SignatureRequest struct {
	Category string `json:"category" validate:"omitempty,max=64"`
}

type PageviewRequest struct {
	Page      string `json:"page" validate:"required,max=256"`
	SessionID string `json:"sessionId" validate:"omitempty,max=64"`
	Referrer  string `json:"referrer" validate:"omitempty,max=512"`
}

type EventRequest struct {
	Event string            `json:"event" validate:"required,max=64"`
	Data  map[string]string `json:"data" validate:"omitempty,max=20,dive,keys,max=64,endkeys,max=256"`
}

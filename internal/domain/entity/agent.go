package entity

// AgentProfile is the sender identity used in rendered messages. At most one
// profile is active at a time.
type AgentProfile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

// DefaultAgent is used when no profile has been stored yet
func DefaultAgent() AgentProfile {
	return AgentProfile{
		ID:       "default",
		Name:     "Joabh Souza",
		Role:     "Consultor de Viagens",
		Phone:    "(75) 99202-0012",
		Email:    "suporte@clubedovooviagens.com.br",
		IsActive: true,
	}
}

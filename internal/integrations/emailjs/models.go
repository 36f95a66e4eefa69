package emailjs

// sendRequest тело запроса EmailJS REST API
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"` // публичный ключ аккаунта
	TemplateParams map[string]string `json:"template_params"`
}

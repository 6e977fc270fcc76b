package request

// SavePaymentFormRequest carries the gateway checkout fragment that must
// survive the navigation to the payment page.
type SavePaymentFormRequest struct {
	Token    string `json:"token" validate:"required"`
	FormHTML string `json:"form_html" validate:"required"`
}

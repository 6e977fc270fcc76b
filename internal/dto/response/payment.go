package response

// PaymentFormResponse returns a stored checkout fragment to the payment page.
// Scripts lists the embedded script elements that must be re-created after
// the fragment is inserted as markup, or the gateway's client-side
// initialization will never run.
type PaymentFormResponse struct {
	Token     string   `json:"token"`
	FormHTML  string   `json:"form_html"`
	CreatedAt string   `json:"created_at"`
	Scripts   []string `json:"scripts"`
}
